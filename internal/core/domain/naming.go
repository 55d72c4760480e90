package domain

// Resource names are derived from the application name only; callers guarantee the
// application name is unique.

func AppName(name string) string {
	return "app-" + name
}

func BuildJobName(name string) string {
	return "build-" + name
}

func AuthSecretName(name string) string {
	return "auth-" + name
}
