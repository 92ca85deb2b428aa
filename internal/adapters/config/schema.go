package config

// Projectfile represents the structure of the changed.yaml configuration file.
type Projectfile struct {
	Version     string            `yaml:"version"`
	Root        string            `yaml:"root"`
	Scenarios   string            `yaml:"scenarios"`
	Pattern     string            `yaml:"pattern"`
	Runner      *[]string         `yaml:"runner"`
	Parallelism *int              `yaml:"parallelism"`
	Env         map[string]string `yaml:"env"`
}
