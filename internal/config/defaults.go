package config

// Browser identity sent with every request.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		"Upgrade-Insecure-Requests": "1",
		"Accept-Language":           "en-US,en;q=0.9",
		"Accept-Encoding":           "gzip, deflate, br",
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8",
		"Connection":                "keep-alive",
	}
}

func DefaultSkills() []string {
	return []string{
		"python", "django", "flask", "aws", "docker", "kubernetes", "sql",
		"rest api", "microservices", "git", "linux", "cloud", "api design",
	}
}

func DefaultRoles() []string {
	return []string{
		"software engineer", "backend developer", "software developer",
		"devops engineer", "cloud engineer",
	}
}

func DefaultPreferences() []string {
	return []string{"remote", "international", "ngo", "non-profit", "worldwide"}
}
