package corpus

// Hand-authored sample corpora used when the on-disk sources are missing,
// malformed, or empty after filtering. Index construction must never
// prevent server startup; a small deterministic corpus beats no corpus.

func fallbackJobDocuments() []Document {
	return []Document{
		{
			Content:  "Role: Frontend Developer. Skills: React, JavaScript, HTML, CSS, Git. Experience: Mid-level",
			Metadata: map[string]string{"role": "Frontend Developer", "skills": "React, JavaScript"},
		},
		{
			Content:  "Role: Backend Developer. Skills: Node.js, Express, MongoDB, REST APIs. Experience: Mid-level",
			Metadata: map[string]string{"role": "Backend Developer", "skills": "Node.js, Express"},
		},
		{
			Content:  "Role: Product Manager. Skills: User Research, Roadmapping, Stakeholder Management, Agile. Experience: Mid-level",
			Metadata: map[string]string{"role": "Product Manager", "skills": "Product Management"},
		},
	}
}

func fallbackCourseDocuments() []Document {
	return []Document{
		{
			Content:  "Course: The Complete React Course. Platform: Udemy. Skills: React, Hooks, State Management. Difficulty: Beginner",
			Metadata: map[string]string{"courseName": "The Complete React Course", "platform": "Udemy", "price": "Paid"},
		},
		{
			Content:  "Course: Node.js Complete Guide. Platform: Udemy. Skills: Node.js, Express, MongoDB. Difficulty: Intermediate",
			Metadata: map[string]string{"courseName": "Node.js Complete Guide", "platform": "Udemy", "price": "Paid"},
		},
	}
}

func fallbackStoryDocuments() []Document {
	return []Document{
		{
			Content:  "Sarah transitioned from marketing to product management in 8 months by learning SQL, user research, and product frameworks. Her marketing background helped her understand customer needs better.",
			Metadata: map[string]string{},
		},
		{
			Content:  "John moved from teaching to software development in 10 months. His ability to explain complex concepts helped him excel at technical documentation.",
			Metadata: map[string]string{},
		},
	}
}
