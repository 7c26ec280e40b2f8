package main

import "io/fs"

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. This way the code that reads levels
// and configs can use a FS object and work the same whether the files are
// embedded in the executable or read from the data folder.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}
