//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Plays pong in an OpenGL window.
func (Run) Window() error {
	return runGame("window")
}

// Plays pong inside the current terminal. Logs go to pong.log.
func (Run) Terminal() error {
	return runGame("terminal")
}

func runGame(frontend string) error {
	mg.Deps(Build.Game)
	fmt.Printf("Run pong in %s mode...\n", frontend)
	if _, err := executeCmd("bin/pong", withArgs("-frontend", frontend), withStream()); err != nil {
		return err
	}
	return nil
}
