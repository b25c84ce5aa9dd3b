package workflow

// Document is a complete autograding workflow file.
type Document struct {
	Name        string
	On          []string
	Permissions []Permission
	JobID       string
	Job         Job
}

// Permission grants one access scope to the workflow token.
type Permission struct {
	Scope string
	Level string
}

// Job is the single job of the workflow. Its steps run inside the
// configured container image.
type Job struct {
	Image  string
	RunsOn string
	Steps  []Step
}

// Step is one entry of the job's steps list. Zero-valued fields are
// omitted when the step is rendered; the rendered key order is name,
// id, uses, env, with, run.
type Step struct {
	Name string
	ID   string
	Uses string
	Env  Params
	With Params
	Run  string
}

// Param is one key/value entry of an ordered mapping.
type Param struct {
	Key   string
	Value string
}

// Params is a mapping that keeps its keys in first-insertion order.
type Params []Param

// Set updates the value for key in place, or appends the pair when the
// key is new. A re-set key keeps the position of its first insertion.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: value})
}

// Get returns the value stored for key.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}
