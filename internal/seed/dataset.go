package seed

// Word lists for generated campground names and a city list for locations.

var descriptors = []string{
	"Forest", "Ancient", "Petrified", "Roaring", "Cascade", "Tumbling",
	"Silent", "Redwood", "Bullfrog", "Maple", "Misty", "Elk", "Grizzly",
	"Ocean", "Sky", "Dusty", "Diamond",
}

var places = []string{
	"Flats", "Village", "Canyon", "Pond", "Group Camp", "Horse Camp",
	"Ghost Town", "Camp", "Dispersed Camp", "Backcountry", "River",
	"Creek", "Creekside", "Bay", "Spring", "Bayshore", "Sands", "Mule Camp",
	"Hunting Camp", "Cliffs", "Hollow",
}

type city struct {
	Name  string
	State string
}

var cities = []city{
	{"Redding", "California"},
	{"Bend", "Oregon"},
	{"Missoula", "Montana"},
	{"Moab", "Utah"},
	{"Flagstaff", "Arizona"},
	{"Asheville", "North Carolina"},
	{"Duluth", "Minnesota"},
	{"Bar Harbor", "Maine"},
	{"Estes Park", "Colorado"},
	{"Jackson", "Wyoming"},
	{"Gatlinburg", "Tennessee"},
	{"Lake Placid", "New York"},
	{"Port Angeles", "Washington"},
	{"Traverse City", "Michigan"},
	{"Hot Springs", "Arkansas"},
	{"Custer", "South Dakota"},
	{"Whitefish", "Montana"},
	{"Sedona", "Arizona"},
	{"Boone", "Iowa"},
	{"Marquette", "Michigan"},
}

const defaultImage = "https://source.unsplash.com/collection/483251"

const defaultDescription = "Lorem ipsum dolor sit amet consectetur adipisicing elit. " +
	"Quibusdam dolores vero perferendis laudantium, consequuntur voluptatibus " +
	"nulla architecto, sit soluta esse iure sed labore ipsam a cum nihil atque " +
	"molestiae, deserunt!"
