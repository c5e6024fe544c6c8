package scouting

var nationalities = []string{
	"USA", "Canada", "Mexico", "Brazil", "Argentina", "Spain",
	"France", "Germany", "Nigeria", "Japan", "Dominican Republic", "Australia",
}

var firstNames = []string{
	"Marcus", "Diego", "Kenji", "Luca", "Tomas", "Andre", "Mateo", "Oliver",
	"Jamal", "Hugo", "Rafael", "Noah", "Elijah", "Kwame", "Yuto", "Felix",
	"Santiago", "Isaac", "Caleb", "Emeka", "Liam", "Gabriel", "Jonah", "Theo",
	"Malik", "Adrian", "Sebastian", "Owen", "Dominic", "Kai",
}

var lastNames = []string{
	"Johnson", "Silva", "Tanaka", "Rossi", "Garcia", "Muller", "Okafor", "Martin",
	"Williams", "Fernandez", "Nakamura", "Dubois", "Brown", "Mensah", "Lopez", "Schmidt",
	"Walker", "Moreau", "Costa", "Adeyemi", "Thompson", "Alvarez", "Kim", "Novak",
	"Reyes", "Bennett", "Hughes", "Castillo", "Suzuki", "Campbell",
}
