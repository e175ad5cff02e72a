package catalog

// Default returns the catalog the site ships with.
func Default() *Catalog {
	return &Catalog{
		Profile: Profile{
			Headline: "Hi, I'm Sixia Sun!",
			Welcome:  "Welcome to my blog!",
			Bio: "I specialize in Natural Language Processing (NLP), distributed systems, and cloud computing. " +
				"Passionate about AI-powered applications, I create high-performance systems using Python, Java, and JavaScript.",
			Education: "Holding dual Master's degrees in Information Technology (UQ, Australia) and Computer Software " +
				"Engineering (Northeastern, USA), I bring a deep technical foundation and a global perspective to software development.",
			Signature: "By S.X.SUN",
			Avatar:    "/imgs/photo.jpg",
			Social: []Social{
				{Name: "Twitter", Link: "https://twitter.com/yourhandle"},
				{Name: "GitHub", Link: "https://github.com/yourusername"},
				{Name: "LinkedIn", Link: "https://linkedin.com/in/yourprofile"},
			},
		},
		Articles: []Article{
			{
				Title: "Resolving Kafka Startup Issues: Missing Environment Variable KAFKA_LISTENERS",
				Date:  "March 11, 2024",
				Tags:  []string{"Python", "Kafka"},
				Slug:  "/sxhub/2025031102",
			},
		},
		Projects: []Project{
			{
				ID:          1,
				Name:        "AI-Powered Language Assessment",
				Description: "An AI-driven system for automated language proficiency assessment using NLP and speech recognition.",
				Image:       "/imgs/ai-language-assessment.jpg",
				Link:        "https://github.com/yourusername/ai-language-assessment",
			},
			{
				ID:          2,
				Name:        "News Recommendation System",
				Description: "A real-time news recommendation system using collaborative filtering and Elasticsearch.",
				Image:       "/imgs/news-recommendation.jpg",
				Link:        "https://github.com/yourusername/news-recommendation",
			},
			{
				ID:          3,
				Name:        "Real-Time Stock Prediction",
				Description: "A deep learning model predicting stock market trends using LSTMs and real-time data.",
				Image:       "/imgs/stock-prediction.jpg",
				Link:        "https://github.com/yourusername/stock-prediction",
			},
		},
		Contacts: []Contact{
			{ID: 1, Name: "Email", Link: "mailto:sixia.sun@outlook.com", DisplayText: "sixia.sun@outlook.com", Accent: "red"},
			{ID: 2, Name: "LinkedIn", Link: "https://www.linkedin.com/in/sxsun-neu", DisplayText: "linkedin.com/in/sxsun-neu", Accent: "blue"},
			{ID: 3, Name: "Kaggle", Link: "https://www.kaggle.com/your-kaggle-profile", DisplayText: "kaggle.com/your-kaggle-profile", Accent: "purple"},
		},
		Albums: []Album{
			{
				ID:          1,
				Title:       "Gold Coast",
				Description: "Golden beaches, endless sunshine, and vibrant coastal vibes. Gold Coast is where the ocean meets adventure.",
				Images:      []string{"/imgs/gc1.jpg", "/imgs/gc2.jpg", "/imgs/gc3.jpg"},
			},
			{
				ID:          2,
				Title:       "Brisbane City Walk",
				Description: "The Brisbane River is a winding waterway flowing through Brisbane, Australia, known for its scenic views.",
				Images:      []string{"/imgs/brisbane-city.jpg", "/imgs/southbank.jpg", "/imgs/bc2.jpg", "/imgs/bc3.jpg"},
			},
			{
				ID:          3,
				Title:       "Napa Winery in California",
				Description: "A peaceful winery visit with hilltop views, scenic tram rides, and exquisite wines.",
				Images:      []string{"/imgs/napa1.png", "/imgs/napa2.png", "/imgs/napa3.png", "/imgs/napa4.png"},
			},
		},
	}
}
