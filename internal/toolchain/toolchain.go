// Package toolchain invokes the C compiler and linker to turn a user
// program's source into an executable, capturing combined diagnostics the
// way the original compile step did.
package toolchain

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/PRIArobotics/HedgehogLightPi/internal/store"
)

// Toolchain names the external compiler binary used to build user
// programs.
type Toolchain struct {
	Compiler string
}

// New returns a Toolchain invoking the named compiler (e.g. "gcc").
func New(compiler string) *Toolchain {
	return &Toolchain{Compiler: compiler}
}

// supportObjects are the pre-built object files every user program links
// against: the framing codec, the loop-driven I/O helpers, the user
// program support library, and the hardware-type-specific glue.
func supportObjects(hwType byte) []string {
	return []string{
		"./axcp.o",
		"./tools.o",
		"./userprogram.o",
		fmt.Sprintf("./andrixhwtype%d.o", hwType),
	}
}

// Result reports the outcome of compiling (and, on success, linking) one
// program version.
type Result struct {
	Succeeded   bool
	Diagnostics []byte
}

// Compile builds and links the source at paths.Source into paths.Binary,
// combining compiler and linker stdout/stderr into paths.Diagnostics. A
// failure at either stage, including a compiler binary that cannot be
// started, is reported in the returned Result rather than as an error; err
// is non-nil only when the diagnostics file cannot be created or read.
func (tc *Toolchain) Compile(paths store.Paths, hwType byte) (Result, error) {
	diagFile, err := os.Create(paths.Diagnostics)
	if err != nil {
		return Result{}, err
	}
	defer diagFile.Close()

	compileCmd := exec.Command(tc.Compiler,
		"-Wall", "-ggdb3", "-std=c99", "-pedantic",
		"-c", "-o", paths.Object, paths.Source)
	compileCmd.Stdout = diagFile
	compileCmd.Stderr = diagFile
	compileErr := compileCmd.Run()

	linked := false
	if compileErr == nil {
		linkCmd := exec.Command(tc.Compiler, append([]string{
			"-o", paths.Binary, paths.Object,
		}, supportObjects(hwType)...)...)
		linkCmd.Stdout = diagFile
		linkCmd.Stderr = diagFile
		linked = linkCmd.Run() == nil
	}

	diagnostics, readErr := os.ReadFile(paths.Diagnostics)
	if readErr != nil {
		return Result{}, readErr
	}
	return Result{Succeeded: compileErr == nil && linked, Diagnostics: diagnostics}, nil
}
