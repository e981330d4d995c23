package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/robonotes/gonotes/examples"
)

func main() {
	// Optional; GONOTES_MIDI_DIR may come from the environment instead
	godotenv.Load()

	if err := examples.GetRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
