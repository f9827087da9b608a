package contacts

// File is the top-level structure of a contacts seed file.
//
//	contacts:
//	  - name: Mom
//	    info: "+1 (234) 567-8900"
//	  - name: Wordle Gang
//	    info: Wordle Gang
type File struct {
	Contacts []Entry `yaml:"contacts"`
}

// Entry is one seeded contact.
type Entry struct {
	Name string `yaml:"name"`
	Info string `yaml:"info"`
}
