package model

// SeedActivities returns the built-in activity catalog every new thread
// starts from.
func SeedActivities() []Activity {
	return []Activity{
		// Food
		{ID: "1", Name: "Brunch", Icon: "🥐", Category: CategoryFood, Description: "Enjoy a lazy weekend brunch"},
		{ID: "2", Name: "Cook Together", Icon: "👨‍🍳", Category: CategoryFood, Description: "Try a new recipe together"},
		{ID: "3", Name: "Farmers Market", Icon: "🥬", Category: CategoryFood, Description: "Fresh ingredients and local treats"},
		{ID: "4", Name: "Wine Tasting", Icon: "🍷", Category: CategoryFood, Description: "Discover new flavors"},
		{ID: "5", Name: "Food Truck Hunt", Icon: "🚚", Category: CategoryFood, Description: "Adventure through food trucks"},
		{ID: "21", Name: "Baking Session", Icon: "🧁", Category: CategoryFood, Description: "Bake cookies, cakes, or bread"},
		{ID: "22", Name: "Street Food Tour", Icon: "🍢", Category: CategoryFood, Description: "Explore local street food spots"},
		{ID: "23", Name: "Coffee Tasting", Icon: "☕", Category: CategoryFood, Description: "Try different brews or cafés"},
		{ID: "24", Name: "BBQ Party", Icon: "🍖", Category: CategoryFood, Description: "Host a backyard barbecue"},

		// Outdoor
		{ID: "6", Name: "Hiking", Icon: "🥾", Category: CategoryOutdoor, Description: "Explore nature trails"},
		{ID: "7", Name: "Beach Day", Icon: "🏖️", Category: CategoryOutdoor, Description: "Sun, sand, and waves"},
		{ID: "8", Name: "Bike Ride", Icon: "🚴‍♂️", Category: CategoryOutdoor, Description: "Cycle through scenic routes"},
		{ID: "9", Name: "Picnic", Icon: "🧺", Category: CategoryOutdoor, Description: "Outdoor dining experience"},
		{ID: "10", Name: "Kayaking", Icon: "🛶", Category: CategoryOutdoor, Description: "Paddle through calm waters"},
		{ID: "25", Name: "Nature Walk", Icon: "🌳", Category: CategoryOutdoor, Description: "Relaxed walk through a park"},
		{ID: "26", Name: "Camping", Icon: "🏕️", Category: CategoryOutdoor, Description: "Overnight outdoor adventure"},
		{ID: "27", Name: "Stargazing", Icon: "🌌", Category: CategoryOutdoor, Description: "Watch the night sky"},
		{ID: "28", Name: "Photography Walk", Icon: "📸", Category: CategoryOutdoor, Description: "Capture scenic moments"},
		{ID: "29", Name: "Outdoor Workout", Icon: "🏋️‍♂️", Category: CategoryOutdoor, Description: "Exercise in fresh air"},

		// Entertainment
		{ID: "11", Name: "Movie Night", Icon: "🎬", Category: CategoryEntertainment, Description: "Cozy cinema experience"},
		{ID: "12", Name: "Concert", Icon: "🎵", Category: CategoryEntertainment, Description: "Live music experience"},
		{ID: "13", Name: "Museum Visit", Icon: "🏛️", Category: CategoryEntertainment, Description: "Explore art and culture"},
		{ID: "14", Name: "Board Games", Icon: "🎲", Category: CategoryEntertainment, Description: "Fun competitive games"},
		{ID: "15", Name: "Comedy Show", Icon: "😂", Category: CategoryEntertainment, Description: "Laugh the night away"},
		{ID: "30", Name: "Theater Play", Icon: "🎭", Category: CategoryEntertainment, Description: "Watch a live drama"},
		{ID: "31", Name: "Bowling", Icon: "🎳", Category: CategoryEntertainment, Description: "Fun indoor game"},
		{ID: "32", Name: "Arcade Games", Icon: "🕹️", Category: CategoryEntertainment, Description: "Retro fun and prizes"},
		{ID: "33", Name: "Karaoke Night", Icon: "🎤", Category: CategoryEntertainment, Description: "Sing your favorite songs"},
		{ID: "34", Name: "Sports Match", Icon: "⚽", Category: CategoryEntertainment, Description: "Watch or play a local game"},

		// Relax
		{ID: "16", Name: "Spa Day", Icon: "🧴", Category: CategoryRelax, Description: "Pamper and unwind"},
		{ID: "17", Name: "Reading", Icon: "📚", Category: CategoryRelax, Description: "Get lost in a good book"},
		{ID: "18", Name: "Meditation", Icon: "🧘‍♀️", Category: CategoryRelax, Description: "Find inner peace"},
		{ID: "19", Name: "Bubble Bath", Icon: "🛁", Category: CategoryRelax, Description: "Luxurious relaxation"},
		{ID: "20", Name: "Yoga", Icon: "🧘‍♂️", Category: CategoryRelax, Description: "Stretch and breathe"},
		{ID: "35", Name: "Digital Detox", Icon: "📵", Category: CategoryRelax, Description: "Unplug from screens"},
		{ID: "36", Name: "Gardening", Icon: "🪴", Category: CategoryRelax, Description: "Plant or tend to your garden"},
		{ID: "37", Name: "Journaling", Icon: "✍️", Category: CategoryRelax, Description: "Reflect on your thoughts"},
		{ID: "38", Name: "Power Nap", Icon: "😴", Category: CategoryRelax, Description: "Recharge your energy"},

		// Learning / creative
		{ID: "39", Name: "DIY Project", Icon: "🛠️", Category: CategoryLearning, Description: "Build something creative"},
		{ID: "40", Name: "Painting", Icon: "🎨", Category: CategoryLearning, Description: "Express yourself with colors"},
		{ID: "41", Name: "Photography Lesson", Icon: "📷", Category: CategoryLearning, Description: "Learn new camera tricks"},
		{ID: "42", Name: "Online Course", Icon: "💻", Category: CategoryLearning, Description: "Upskill from home"},
		{ID: "43", Name: "Music Practice", Icon: "🎸", Category: CategoryLearning, Description: "Play or learn an instrument"},

		// Social
		{ID: "44", Name: "House Party", Icon: "🏠", Category: CategorySocial, Description: "Invite friends over"},
		{ID: "45", Name: "Volunteering", Icon: "🤝", Category: CategorySocial, Description: "Give back to the community"},
		{ID: "46", Name: "Family Game Night", Icon: "👨‍👩‍👧‍👦", Category: CategorySocial, Description: "Bond with family"},
		{ID: "47", Name: "Meet New People", Icon: "🫂", Category: CategorySocial, Description: "Join a club or meetup"},

		// Adventure
		{ID: "48", Name: "Road Trip", Icon: "🚗", Category: CategoryAdventure, Description: "Spontaneous getaway"},
		{ID: "49", Name: "Amusement Park", Icon: "🎡", Category: CategoryAdventure, Description: "Thrilling rides & games"},
		{ID: "50", Name: "Ziplining", Icon: "🌉", Category: CategoryAdventure, Description: "High-speed adventure"},
		{ID: "51", Name: "Treasure Hunt", Icon: "🗺️", Category: CategoryAdventure, Description: "Fun scavenger game"},
		{ID: "52", Name: "Go Karting", Icon: "🏎️", Category: CategoryAdventure, Description: "Race with friends"},
	}
}
