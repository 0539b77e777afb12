package loader

// SamplePublishers is the fixed publisher list of the sample catalog. It is
// a superset of the publishers referenced by SampleCatalog.
func SamplePublishers() []string {
	return []string{
		"Hachette Book Group",
		"HarperCollins Publishers",
		"Macmillan Publishers",
		"Penguin Random House",
		"Oxford University Press",
		"Cambridge University Press",
		"Wiley",
		"Elsevier",
		"Pearson",
		"McGraw-Hill Education",
		"Houghton Mifflin Harcourt",
		"Cengage Learning",
		"Bloomsbury Publishing",
		"Farrar, Straus and Giroux",
		"Little, Brown and Company",
	}
}

// SampleCatalog returns the demo catalog of twenty-one books. Two Elsevier titles
// share one ISBN, so duplicates are keyed on (title, isbn).
func SampleCatalog() []SeedBook {
	return []SeedBook{
		{
			Title:         "The Midnight Library",
			Author:        "Matt Haig",
			Publisher:     "Hachette Book Group",
			Description:   "A novel about life choices and alternate realities.",
			ISBN:          "978-0525559474",
			Price:         26,
			Stock:         15,
			Genre:         "Fiction",
			PublishedDate: "2020-08-13",
		},
		{
			Title:         "Atomic Habits",
			Author:        "James Clear",
			Publisher:     "Hachette Book Group",
			Description:   "An easy & proven way to build good habits & break bad ones.",
			ISBN:          "978-0735211292",
			Price:         27,
			Stock:         22,
			Genre:         "Self-Help",
			PublishedDate: "2018-10-16",
		},
		{
			Title:         "Where the Crawdads Sing",
			Author:        "Delia Owens",
			Publisher:     "HarperCollins Publishers",
			Description:   "A mystery about a young woman who raised herself in the marshes.",
			ISBN:          "978-0735219090",
			Price:         18,
			Stock:         8,
			Genre:         "Fiction",
			PublishedDate: "2018-08-14",
		},
		{
			Title:         "Educated",
			Author:        "Tara Westover",
			Publisher:     "HarperCollins Publishers",
			Description:   "A memoir about a woman who grows up in a survivalist family.",
			ISBN:          "978-0399590504",
			Price:         19.99,
			Stock:         12,
			Genre:         "Memoir",
			PublishedDate: "2018-02-20",
		},
		{
			Title:         "The Seven Husbands of Evelyn Hugo",
			Author:        "Taylor Jenkins Reid",
			Publisher:     "Macmillan Publishers",
			Description:   "A reclusive Hollywood icon finally tells her story.",
			ISBN:          "978-1250093452",
			Price:         17,
			Stock:         18,
			Genre:         "Fiction",
			PublishedDate: "2017-06-13",
		},
		{
			Title:         "The Subtle Art of Not Giving a F*ck",
			Author:        "Mark Manson",
			Publisher:     "Penguin Random House",
			Description:   "A counterintuitive approach to living a good life.",
			ISBN:          "978-0062457714",
			Price:         24.99,
			Stock:         20,
			Genre:         "Self-Help",
			PublishedDate: "2016-09-13",
		},
		{
			Title:         "Sapiens: A Brief History of Humankind",
			Author:        "Yuval Noah Harari",
			Publisher:     "Penguin Random House",
			Description:   "The groundbreaking international bestseller.",
			ISBN:          "978-0062316097",
			Price:         24.99,
			Stock:         16,
			Genre:         "History",
			PublishedDate: "2014-01-01",
		},
		{
			Title:         "The Oxford English Dictionary",
			Author:        "Oxford University Press",
			Publisher:     "Oxford University Press",
			Description:   "The definitive record of the English language.",
			ISBN:          "978-0199212604",
			Price:         195,
			Stock:         3,
			Genre:         "Reference",
			PublishedDate: "2005-01-01",
		},
		{
			Title:         "Oxford Advanced Learner's Dictionary",
			Author:        "Oxford University Press",
			Publisher:     "Oxford University Press",
			Description:   "The world's bestselling advanced-level dictionary.",
			ISBN:          "978-0194799003",
			Price:         45,
			Stock:         10,
			Genre:         "Reference",
			PublishedDate: "2015-03-01",
		},
		{
			Title:         "English Grammar in Use",
			Author:        "Raymond Murphy",
			Publisher:     "Cambridge University Press",
			Description:   "The world's best-selling grammar book.",
			ISBN:          "978-0521189064",
			Price:         35,
			Stock:         14,
			Genre:         "Education",
			PublishedDate: "2012-02-23",
		},
		{
			Title:         "Introduction to Algorithms",
			Author:        "Thomas H. Cormen",
			Publisher:     "Cambridge University Press",
			Description:   "The authoritative introduction to algorithms.",
			ISBN:          "978-0262033848",
			Price:         89.99,
			Stock:         6,
			Genre:         "Technology",
			PublishedDate: "2009-07-31",
		},
		{
			Title:         "Fundamentals of Physics",
			Author:        "David Halliday",
			Publisher:     "Wiley",
			Description:   "The classic textbook for physics students.",
			ISBN:          "978-0470469118",
			Price:         75,
			Stock:         8,
			Genre:         "Science",
			PublishedDate: "2013-01-01",
		},
		{
			Title:         "Business Statistics",
			Author:        "David F. Groebner",
			Publisher:     "Wiley",
			Description:   "A comprehensive introduction to business statistics.",
			ISBN:          "978-0134496498",
			Price:         65,
			Stock:         9,
			Genre:         "Business",
			PublishedDate: "2017-01-01",
		},
		{
			Title:         "Gray's Anatomy",
			Author:        "Henry Gray",
			Publisher:     "Elsevier",
			Description:   "The definitive textbook of human anatomy.",
			ISBN:          "978-0323353175",
			Price:         125,
			Stock:         4,
			Genre:         "Medical",
			PublishedDate: "2015-09-25",
		},
		{
			Title:         "Robbins Basic Pathology",
			Author:        "Vinay Kumar",
			Publisher:     "Elsevier",
			Description:   "A comprehensive textbook of pathology.",
			ISBN:          "978-0323353175",
			Price:         95,
			Stock:         7,
			Genre:         "Medical",
			PublishedDate: "2017-04-01",
		},
		{
			Title:         "Calculus: Early Transcendentals",
			Author:        "James Stewart",
			Publisher:     "Pearson",
			Description:   "The leading calculus textbook for students.",
			ISBN:          "978-0538498876",
			Price:         85,
			Stock:         11,
			Genre:         "Mathematics",
			PublishedDate: "2011-01-01",
		},
		{
			Title:         "Psychology",
			Author:        "David G. Myers",
			Publisher:     "Pearson",
			Description:   "The world's bestselling psychology textbook.",
			ISBN:          "978-1464140815",
			Price:         78,
			Stock:         13,
			Genre:         "Psychology",
			PublishedDate: "2014-01-01",
		},
		{
			Title:         "Campbell Biology",
			Author:        "Lisa A. Urry",
			Publisher:     "McGraw-Hill Education",
			Description:   "The world's most successful majors biology textbook.",
			ISBN:          "978-0134093413",
			Price:         92,
			Stock:         5,
			Genre:         "Biology",
			PublishedDate: "2016-10-01",
		},
		{
			Title:         "Chemistry: The Central Science",
			Author:        "Theodore E. Brown",
			Publisher:     "McGraw-Hill Education",
			Description:   "The authoritative introduction to chemistry.",
			ISBN:          "978-0134414232",
			Price:         88,
			Stock:         9,
			Genre:         "Chemistry",
			PublishedDate: "2017-01-01",
		},
		{
			Title:         "Harry Potter and the Philosopher's Stone",
			Author:        "J.K. Rowling",
			Publisher:     "Bloomsbury Publishing",
			Description:   "The first book in the Harry Potter series.",
			ISBN:          "978-0747532699",
			Price:         12.99,
			Stock:         25,
			Genre:         "Fantasy",
			PublishedDate: "1997-06-26",
		},
		{
			Title:         "A Room with a View",
			Author:        "E.M. Forster",
			Publisher:     "Bloomsbury Publishing",
			Description:   "A classic novel of manners and romance.",
			ISBN:          "978-0141183049",
			Price:         9.99,
			Stock:         12,
			Genre:         "Fiction",
			PublishedDate: "1908-10-01",
		},
	}
}
