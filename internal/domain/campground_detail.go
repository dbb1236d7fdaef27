package domain

// CampgroundDetail is the read model for the detail page: the listing with
// its review references resolved to full documents, in list order.
type CampgroundDetail struct {
	Campground
	ResolvedReviews []Review `json:"resolved_reviews"`
}
