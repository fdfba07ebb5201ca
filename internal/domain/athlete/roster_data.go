package athlete

// defaultRoster is the squad tracked by the program, in intake order.
var defaultRoster = []Athlete{
	{Name: "Acevedo, Joshua", Position: Line},
	{Name: "Ahonala, Kasper", Position: BigSkill},
	{Name: "Allen-Jackson, Daniel", Position: Skill},
	{Name: "Alonso, Fabian", Position: Line},
	{Name: "Ama Jr., Spencer", Position: Skill},
	{Name: "Andara, Aidan", Position: BigSkill},
	{Name: "Anderson, Jaylin", Position: Skill},
	{Name: "Anguiano, Damian", Position: Line},
	{Name: "Barajas, Julian", Position: Line},
	{Name: "Barden, Michael", Position: Skill},
	{Name: "Barklow, Dalton", Position: BigSkill},
	{Name: "Barklow, Neil", Position: Line},
	{Name: "Barron, Oscar", Position: BigSkill},
	{Name: "Bautista, Moises", Position: Skill},
	{Name: "Bedolla, Xavier", Position: Skill},
	{Name: "Benkis, Jordan", Position: BigSkill},
	{Name: "Birk, Griffin", Position: BigSkill},
	{Name: "Bivins, Josiah", Position: Line},
	{Name: "Bradshaw, Declan", Position: Skill},
	{Name: "Burke, Ethan", Position: Skill},
	{Name: "Busse, Jack", Position: BigSkill},
	{Name: "Cardenas, Emiliano", Position: Line},
	{Name: "Chipres, Edgar (Alex)", Position: BigSkill},
	{Name: "Clark, Jack", Position: Skill},
	{Name: "Correa, Elian", Position: BigSkill},
	{Name: "Courson, Dylan", Position: Skill},
	{Name: "Danielewicz, Blake", Position: Skill},
	{Name: "Diaz Orozco, Sebastian", Position: Skill},
	{Name: "DiCarlo Guzman, Vito", Position: Skill},
	{Name: "Dolan, Gabriel", Position: BigSkill},
	{Name: "Doss, Hunter", Position: Skill},
	{Name: "Evaimalo, Kini", Position: BigSkill},
	{Name: "Fakapelea, Joshua", Position: Skill},
	{Name: "Fifita, Malachai", Position: Line},
	{Name: "Fisiihoi, Liviu", Position: Line},
	{Name: "Flores Arteaga, Jayden", Position: Skill},
	{Name: "Franco, Anthony", Position: Skill},
	{Name: "Fusimalohi, Sione", Position: Line},
	{Name: "Gabriel, Kyle", Position: Skill},
	{Name: "Gonzalez, Eber", Position: Line},
	{Name: "Gonzalez, Julian", Position: BigSkill},
	{Name: "Granville, Noah", Position: Skill},
	{Name: "Groenewald, Martin", Position: Skill},
	{Name: "Guzman, Leo", Position: Line},
	{Name: "Henriquez-Sagrero, Jose", Position: BigSkill},
	{Name: "Ho, Bryant", Position: BigSkill},
	{Name: "Honerkamp, Teddy", Position: BigSkill},
	{Name: "Jackson, Jamario", Position: Skill},
	{Name: "James, Hayden", Position: Line},
	{Name: "Jaramillo-López, Tomás", Position: BigSkill},
	{Name: "Jimenez Ayala, Carlos", Position: BigSkill},
	{Name: "Jimenez, Poco", Position: Line},
	{Name: "Joslin-Davis, Elliott", Position: BigSkill},
	{Name: "Joya, Damon", Position: Skill},
	{Name: "Keighery, Lucca", Position: Skill},
	{Name: "Kline, George [Sonny]", Position: Skill},
	{Name: "Kryger, Dylan", Position: Skill},
	{Name: "Latu, Lawrence", Position: Line},
	{Name: "Lazare, Milo", Position: BigSkill},
	{Name: "Leafa, Nase", Position: BigSkill},
	{Name: "Lolohea, Folau", Position: Line},
	{Name: "Lomangino, Bennett", Position: BigSkill},
	{Name: "Lopez, Mark", Position: Line},
	{Name: "Lua, Joseph", Position: BigSkill},
	{Name: "Maciel, Juan Pablo", Position: BigSkill},
	{Name: "Madrid, Diego", Position: Skill},
	{Name: "Manumaleuna, Bishop", Position: BigSkill},
	{Name: "Martinez, Bryan", Position: Line},
	{Name: "Martinez, Hector", Position: Line},
	{Name: "Massoudi, Cyrus", Position: BigSkill},
	{Name: "Monroe, Kennedy", Position: BigSkill},
	{Name: "Mora, Isiah", Position: Line},
	{Name: "Munguia, Isaiah", Position: Line},
	{Name: "Munguia, Naim", Position: Skill},
	{Name: "Nava, Luis", Position: Line},
	{Name: "Neal, Rashod (Chris)", Position: Line},
	{Name: "Ochoa, Daniel", Position: BigSkill},
	{Name: "Ohtaki, Peter", Position: BigSkill},
	{Name: "Opetaia, Jonathan", Position: BigSkill},
	{Name: "Orrego Mayen, Alvin", Position: Line},
	{Name: "Page Ramirez, Jayden", Position: Skill},
	{Name: "Pahulu, Sione", Position: Line},
	{Name: "Parada Hernandez, Jaime", Position: Line},
	{Name: "Pasallo, Adrian", Position: Skill},
	{Name: "Pellican, Jake", Position: Line},
	{Name: "Raass, Edward", Position: Line},
	{Name: "Rakivnenko, Felix", Position: Line},
	{Name: "Ramos, Vicente", Position: Skill},
	{Name: "Rueda Franco, Ared", Position: Line},
	{Name: "Salas, Xavier", Position: BigSkill},
	{Name: "Sanft, Joseph", Position: Line},
	{Name: "Scott, George", Position: BigSkill},
	{Name: "Sokol, Zachary", Position: Skill},
	{Name: "Stephens, Terrance", Position: Skill},
	{Name: "Tahaafe, Sione", Position: Line},
	{Name: "Talamoa, Cameron", Position: Line},
	{Name: "Talamoa, Panapa", Position: BigSkill},
	{Name: "Tau, Kini", Position: BigSkill},
	{Name: "Taufa, Soane", Position: Line},
	{Name: "Toilolo, Justice", Position: Line},
	{Name: "Vainikolo, Michael", Position: Line},
	{Name: "Valdes, Eddie", Position: Line},
	{Name: "Van der Laan, Connor", Position: BigSkill},
	{Name: "Vele, Isiah", Position: Line},
	{Name: "Villegas-Maldonado, Angel", Position: Line},
	{Name: "Vuchic, Alex", Position: Line},
	{Name: "Weintz, Leif", Position: BigSkill},
	{Name: "Xocua, Armando", Position: BigSkill},
	{Name: "Yoshida, Kaito", Position: Skill},
	{Name: "Zaldana, Nirmal", Position: Line},
}
