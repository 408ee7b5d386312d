package resume

// Curated skill vocabulary, grouped by category. Loaded once at init and
// never mutated.
var technicalSkills = map[string][]string{
	"programming_languages": {
		"python", "javascript", "java", "c++", "c#", "php", "ruby", "go", "rust", "swift",
		"kotlin", "scala", "r", "matlab", "perl", "bash", "powershell", "sql", "html", "css",
	},
	"frameworks": {
		"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "laravel",
		"asp.net", "rails", "fastapi", "gin", "echo", "spring boot", "dotnet", "asp.net core",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "sql server", "dynamodb",
		"cassandra", "elasticsearch", "neo4j", "firebase", "supabase",
	},
	"cloud_platforms": {
		"aws", "azure", "gcp", "google cloud", "amazon web services", "microsoft azure",
		"heroku", "digitalocean", "linode", "vultr", "netlify", "vercel",
	},
	"tools": {
		"git", "docker", "kubernetes", "jenkins", "ci/cd", "terraform", "ansible", "chef",
		"puppet", "jira", "confluence", "slack", "teams", "zoom", "figma", "sketch",
	},
	"methodologies": {
		"agile", "scrum", "kanban", "waterfall", "devops", "lean", "six sigma", "tqm",
	},
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "critical thinking",
	"time management", "organization", "adaptability", "creativity", "analytical",
	"collaboration", "mentoring", "presentation", "negotiation", "project management",
}

// Words that disqualify a noun phrase from being treated as a skill.
var phraseStopWords = []string{"the", "and", "or", "with", "for", "in", "on", "at"}
