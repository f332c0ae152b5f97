package catalog

// shopItems mirrors the cosmetics available in the client shop screen.
var shopItems = []ShopItem{
	// Hats
	{
		ID: "cap-red", Name: "Blue Training Cap", Category: "hat",
		Price: 200, Icon: "🧢", RequiredLevel: 10,
		Description: "Cool blue cap for comfortable training.",
	},
	{
		ID: "crown-gold", Name: "King of Cardio", Category: "hat",
		Price: 2000, Icon: "👑", RequiredLevel: 10,
		Description: "Only for those who have conquered the peak.",
	},
	{
		ID: "ninja-band", Name: "Shadow Bandana", Category: "hat",
		Price: 500, Icon: "🥷", RequiredLevel: 10,
		Description: "Silence your excuses.",
	},

	// Glasses
	{
		ID: "sunglasses-cool", Name: "Elite Shades", Category: "glasses",
		Price: 400, Icon: "🕶️", RequiredLevel: 10,
		Description: "Look cool while burning calories.",
	},
	{
		ID: "monocle-fancy", Name: "Scholar Monocle", Category: "glasses",
		Price: 800, Icon: "🧐", RequiredLevel: 10,
		Description: "Analyze every muscle fiber.",
	},

	// Accessories
	{
		ID: "medal-gold", Name: "Gold Medal", Category: "accessory",
		Price: 1500, Icon: "🥇", RequiredLevel: 3,
		Description: "You are a champion.",
	},
	{
		ID: "dumbbell", Name: "Mini Dumbbell", Category: "accessory",
		Price: 300, Icon: "🏋️", RequiredLevel: 3,
		Description: "Pipi also wants to lift.",
	},

	// Backgrounds
	{
		ID: "bg-gym", Name: "Iron Temple", Category: "background",
		Price: 1000, Icon: "🏢", RequiredLevel: 10,
		Description: "The classic gym vibe.",
	},
	{
		ID: "bg-beach", Name: "Summer Shore", Category: "background",
		Price: 1200, Icon: "🏖️", RequiredLevel: 10,
		Description: "Workout with a sea breeze.",
	},
}
