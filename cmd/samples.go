package cmd

import "github.com/spigell/prep-roadmap/internal/roadmap"

var quickTestSample = roadmap.JobInput{
	CompanyName: "Google",
	Role:        "Software Engineer (SDE-1)",
	JobDescription: `Software Engineer - Google

We are looking for a Software Engineer to join our team and help build the next generation of products.

Requirements:
- Bachelor's degree in Computer Science or equivalent
- 1+ years of software development experience
- Experience with data structures and algorithms
- Knowledge of Python, Java, C++, or Go
- Experience with system design and architecture
- Strong problem-solving skills`,
}

var demoSamples = []roadmap.JobInput{
	{
		CompanyName: "Google",
		Role:        "Software Engineer (SDE-1)",
		JobDescription: `Software Engineer - Google

We are looking for a Software Engineer to join our team and help build the next generation of products.

Responsibilities:
- Design, develop, test, deploy, maintain and improve software
- Work with large-scale distributed systems
- Write efficient code following best practices
- Collaborate with cross-functional teams

Requirements:
- Bachelor's degree in Computer Science or equivalent
- 1+ years of software development experience
- Experience with data structures and algorithms
- Knowledge of Python, Java, C++, or Go
- Experience with system design and architecture
- Knowledge of web technologies (HTTP, REST APIs, JSON)
- Experience with databases (SQL, NoSQL)
- Strong problem-solving skills`,
	},
	{
		CompanyName: "Microsoft",
		Role:        "Data Scientist",
		JobDescription: `Data Scientist - Microsoft Azure AI

Join our Azure AI team to build intelligent solutions with AI and machine learning.

Responsibilities:
- Develop machine learning models and algorithms
- Analyze large datasets to extract insights
- Design and implement data pipelines
- Conduct statistical analysis and A/B testing
- Present findings to stakeholders

Requirements:
- PhD or Master's in Data Science, Statistics, or Computer Science
- 3+ years of experience in machine learning
- Proficiency in Python and R
- Experience with ML frameworks (TensorFlow, PyTorch, Scikit-learn)
- Strong knowledge of statistics
- Experience with big data technologies (Spark, Hadoop)
- Knowledge of cloud platforms (Azure preferred)
- Strong communication skills`,
	},
	{
		CompanyName: "TechFlow (Startup)",
		Role:        "Full Stack Developer",
		JobDescription: `Full Stack Developer - TechFlow (YC-backed startup)

Fast-growing fintech startup building the future of financial technology.

Responsibilities:
- Build and maintain web application using modern technologies
- Work on both frontend and backend development
- Implement new features from concept to deployment
- Optimize application performance
- Collaborate with designers and product managers

Tech Stack:
- Frontend: React, TypeScript, Tailwind CSS
- Backend: Node.js, Express, PostgreSQL
- Infrastructure: AWS, Docker, Kubernetes

Requirements:
- 2-4 years of full stack development experience
- Strong proficiency in JavaScript/TypeScript
- Experience with React and modern frontend development
- Backend development experience with Node.js
- Database experience with SQL databases
- Understanding of RESTful APIs and microservices
- Experience with cloud platforms (AWS preferred)`,
	},
}
