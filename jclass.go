package jclass

import (
	"fmt"
	"os"

	"github.com/javabin/jclass/classfile"
)

// Open reads and decodes the class file at path.
func Open(path string) (*classfile.ClassFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class file: %w", err)
	}
	return classfile.Decode(data)
}

// Decode decodes a class file already held in memory.
func Decode(data []byte) (*classfile.ClassFile, error) {
	return classfile.Decode(data)
}

// IsClassFile reports whether data starts with the class file magic.
func IsClassFile(data []byte) bool {
	return classfile.IsClassFile(data)
}
