package checkpoint

import "github.com/cpmech/gosl/chk"

// ErrCreateDir reports a failure to create the checkpoint directory.
func ErrCreateDir(dir string, cause error) error {
	return chk.Err("checkpoint: cannot create directory %q: %v", dir, cause)
}

// ErrOpenFile reports a failure to open a checkpoint file for reading or
// writing.
func ErrOpenFile(path string, cause error) error {
	return chk.Err("checkpoint: cannot open file %q: %v", path, cause)
}

// ErrNotFound reports that no checkpoint file exists for the given type.
func ErrNotFound(typ string) error {
	return chk.Err("checkpoint: no checkpoint file found for type %q", typ)
}

// ErrMalformedFilename reports a checkpoint filename that does not match
// checkpoint_<type>_<outer>_<inner>.tsv.
func ErrMalformedFilename(name string) error {
	return chk.Err("checkpoint: malformed checkpoint filename %q", name)
}

// ErrMalformedRow reports a body row that does not split into exactly a
// node name and a node value.
func ErrMalformedRow(line int, row string) error {
	return chk.Err("checkpoint: malformed row at line %d: %q", line, row)
}
