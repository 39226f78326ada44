package args

type args struct {
	Context string // working directory the manifest path is relative to
	File    string // manifest path

	Debug          bool
	NonInteractive bool
}

var Args = &args{}
