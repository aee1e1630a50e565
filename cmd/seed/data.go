package main

import "github.com/yourusername/eduquiz-api/internal/domain/entity"

type seedUser struct {
	username, email, password, role string
}

type seedQuestion struct {
	text       string
	a, b, c, d string
	correct    string
	points     int
}

type seedActivity struct {
	title, description, difficulty, subject string
	teacher                                 string
	questions                               []seedQuestion
}

type seedResult struct {
	student   string
	activity  int // индекс в demoActivities
	score     float64
	maxScore  float64
	timeSpent int
}

var adminUser = seedUser{"admin", "admin@eduplatform.com", "admin123", entity.RoleAdmin}

var demoUsers = []seedUser{
	{"profesor1", "profesor1@eduplatform.com", "profesor123", entity.RoleTeacher},
	{"maria_lopez", "maria@eduplatform.com", "maria123", entity.RoleTeacher},
	{"juan_perez", "juan@eduplatform.com", "juan123", entity.RoleStudent},
	{"ana_garcia", "ana@eduplatform.com", "ana123", entity.RoleStudent},
	{"carlos_rodriguez", "carlos@eduplatform.com", "carlos123", entity.RoleStudent},
	{"lucia_martinez", "lucia@eduplatform.com", "lucia123", entity.RoleStudent},
	{"pedro_sanchez", "pedro@eduplatform.com", "pedro123", entity.RoleStudent},
}

var demoActivities = []seedActivity{
	{
		title:       "Basic Algebra - Linear Equations",
		description: "Fundamental concepts of linear equations and how to solve them",
		difficulty:  entity.DifficultyEasy,
		subject:     "Mathematics",
		teacher:     "profesor1",
		questions: []seedQuestion{
			{"What is the value of x in 2x + 5 = 13?", "x = 3", "x = 4", "x = 5", "x = 6", "b", 2},
			{"If 3x - 7 = 14, what is x?", "x = 5", "x = 6", "x = 7", "x = 8", "c", 2},
			{"Which operation comes first when solving 5x + 3 = 18?", "Add 3", "Subtract 3", "Multiply by 5", "Divide by 5", "b", 1},
			{"What is the slope of the line y = 3x + 2?", "2", "3", "5", "1", "b", 2},
		},
	},
	{
		title:       "Industrial Revolution",
		description: "The most important events of the Industrial Revolution",
		difficulty:  entity.DifficultyMedium,
		subject:     "History",
		teacher:     "profesor1",
		questions: []seedQuestion{
			{"In which century did the Industrial Revolution begin?", "16th century", "17th century", "18th century", "19th century", "c", 1},
			{"Which country industrialised first?", "France", "Germany", "United States", "England", "d", 2},
			{"Which was one of the key inventions of the period?", "The telephone", "The steam engine", "The automobile", "The computer", "b", 2},
		},
	},
	{
		title:       "Photosynthesis and Cellular Respiration",
		description: "Basic concepts of biological processes in plants",
		difficulty:  entity.DifficultyMedium,
		subject:     "Biology",
		teacher:     "maria_lopez",
		questions: []seedQuestion{
			{"Which gas do plants release during photosynthesis?", "Carbon dioxide", "Oxygen", "Nitrogen", "Hydrogen", "b", 2},
			{"Where in the plant cell does photosynthesis happen?", "Nucleus", "Mitochondria", "Chloroplast", "Ribosome", "c", 2},
			{"What do plants need for photosynthesis?", "Only water", "Only sunlight", "Sunlight, water and CO2", "Only CO2", "c", 3},
		},
	},
	{
		title:       "Introduction to Python",
		description: "Basic programming concepts in Python",
		difficulty:  entity.DifficultyHard,
		subject:     "Programming",
		teacher:     "maria_lopez",
		questions: []seedQuestion{
			{"Which data structure is ordered and mutable in Python?", "Tuple", "Set", "List", "String", "c", 2},
			{"What is the exponentiation operator in Python?", "^", "**", "exp()", "pow", "b", 1},
			{"Which keyword defines a function in Python?", "function", "func", "def", "define", "c", 1},
			{"Which method appends an element to the end of a list?", "add()", "append()", "insert()", "push()", "b", 2},
		},
	},
}

var demoResults = []seedResult{
	// juan_perez: хороший студент
	{"juan_perez", 0, 6, 7, 240},
	{"juan_perez", 1, 4, 5, 180},
	{"juan_perez", 2, 6, 7, 200},
	// ana_garcia: отличница
	{"ana_garcia", 0, 7, 7, 200},
	{"ana_garcia", 1, 5, 5, 150},
	{"ana_garcia", 2, 7, 7, 180},
	{"ana_garcia", 3, 5, 6, 300},
	// carlos_rodriguez: нуждается в поддержке
	{"carlos_rodriguez", 0, 3, 7, 400},
	{"carlos_rodriguez", 1, 2, 5, 250},
	// lucia_martinez: средний уровень
	{"lucia_martinez", 0, 5, 7, 220},
	{"lucia_martinez", 2, 5, 7, 210},
	// pedro_sanchez
	{"pedro_sanchez", 1, 4, 5, 190},
	{"pedro_sanchez", 3, 4, 6, 350},
}
