package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jerbob92/v8glue/generator/generator"

	"go.uber.org/zap"
)

var (
	fileName string
	verbose  *bool
)

func init() {
	fileName = os.Getenv("GOFILE")
	verbose = flag.Bool("v", false, "enable verbose logging")
}

func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of v8glue/generator:\n")
	fmt.Fprintf(os.Stderr, "Run through go:generate in the file containing the //v8glue:method directives:\n")
	fmt.Fprintf(os.Stderr, "  //go:generate go run github.com/jerbob92/v8glue/generator\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = Usage
	flag.Parse()

	if fileName == "" {
		log.Fatal("no file given, run through go:generate or set GOFILE")
	}

	dir, err := filepath.Abs(".")
	if err != nil {
		panic(err)
	}

	logger := zap.NewNop()
	if *verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
	}
	defer logger.Sync()

	err = generator.Generate(dir, fileName, logger)
	if err != nil {
		log.Fatal(err)
	}
}
