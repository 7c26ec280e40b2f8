package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/zstd"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	err = yaml.Unmarshal(data, v)
	Check(err)
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		Check(file.Close())
		return true
	} else {
		return false
	}
}

// Serialize writes a fixed-size value in little endian. Everything saved in a
// playthrough goes through here, so that the byte layout stays the same
// between releases as long as the structures stay the same.
func Serialize(w io.Writer, data any) {
	err := binary.Write(w, binary.LittleEndian, data)
	Check(err)
}

func Deserialize(r io.Reader, data any) {
	err := binary.Read(r, binary.LittleEndian, data)
	Check(err)
}

func SerializeSlice[T any](buf *bytes.Buffer, s []T) {
	Serialize(buf, int64(len(s)))
	Serialize(buf, s)
}

func DeserializeSlice[T any](buf *bytes.Buffer, s *[]T) {
	var lenSlice int64
	Deserialize(buf, &lenSlice)
	*s = make([]T, lenSlice)
	Deserialize(buf, *s)
}

func Zip(data []byte) []byte {
	enc, err := zstd.NewWriter(nil)
	Check(err)
	defer func() { Check(enc.Close()) }()
	return enc.EncodeAll(data, nil)
}

func Unzip(data []byte) []byte {
	dec, err := zstd.NewReader(nil)
	Check(err)
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	Check(err)
	return out
}
