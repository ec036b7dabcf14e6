package gtfsrdf

import (
	"log"
	"os"
)

func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
