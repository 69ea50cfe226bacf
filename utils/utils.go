package utils

import (
	"github.com/alecthomas/repr"
)

// Debug dumps a value for development.
func Debug(arg interface{}) {
	if arg != nil {
		repr.Println(arg)
	} else {
		repr.Println("nil")
	}
}
