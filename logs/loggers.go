package logs

import (
	"log"
	"os"
)

var (
	Error = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn  = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
)
