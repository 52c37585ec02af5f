// Package rootio reads directories and histograms out of ROOT files.
package rootio

import (
	"fmt"
	"strings"
	"sync/atomic"

	"histview/internal/hist"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"
)

var handles atomic.Uint64

// File is an opened ROOT file. Objects are read on every Lookup.
type File struct {
	path   string
	handle uint64
	f      *groot.File
}

// Open opens path read-only.
func Open(path string) (*File, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return &File{path: path, handle: handles.Add(1), f: f}, nil
}

func (f *File) Path() string {
	return f.path
}

// Handle is a process-unique id for this open file.
func (f *File) Handle() uint64 {
	return f.handle
}

func (f *File) Close() error {
	return f.f.Close()
}

// Keys lists the root directory keys as "name;cycle".
func (f *File) Keys() []string {
	return rawKeys(f.f)
}

// Lookup walks path one segment at a time. Every segment resolves to the
// key with the highest cycle carrying that name.
func (f *File) Lookup(path string) (hist.Node, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return nil, &ResolutionError{Path: path, Reason: "empty path"}
	}

	var dir riofs.Directory = f.f
	for i, seg := range segments {
		obj, err := getLatest(dir, seg)
		if err != nil {
			return nil, &ResolutionError{Path: path, Reason: fmt.Sprintf("segment %q", seg), Err: err}
		}
		if i == len(segments)-1 {
			return toNode(seg, obj)
		}
		sub, ok := obj.(riofs.Directory)
		if !ok {
			return nil, &ResolutionError{Path: path, Reason: fmt.Sprintf("%q is a %s, not a directory", seg, obj.Class())}
		}
		dir = sub
	}
	return nil, &ResolutionError{Path: path, Reason: "unreachable"}
}

func rawKeys(dir riofs.Directory) []string {
	keys := dir.Keys()
	raw := make([]string, 0, len(keys))
	for i := range keys {
		raw = append(raw, hist.Key{Name: keys[i].Name(), Cycle: int(keys[i].Cycle())}.String())
	}
	return raw
}

func getLatest(dir riofs.Directory, name string) (root.Object, error) {
	keys := dir.Keys()
	parsed := make([]hist.Key, 0, len(keys))
	for i := range keys {
		parsed = append(parsed, hist.Key{Name: keys[i].Name(), Cycle: int(keys[i].Cycle())})
	}

	latest, ok := hist.Latest(parsed, name)
	if !ok {
		return nil, fmt.Errorf("no key named %q", name)
	}
	return dir.Get(latest.String())
}
