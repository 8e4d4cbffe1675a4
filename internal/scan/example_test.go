package scan_test

import (
	"fmt"

	"github.com/comlang/comlang/internal/scan"
)

func ExampleReport_FileCounts() {
	rep := &scan.Report{
		Dir: ".",
		Languages: map[string][]scan.Comment{
			"es": {
				{File: "main.rs", Line: 3, Text: "hola que tal"},
				{File: "lib.rs", Line: 7, Text: "lee el archivo"},
				{File: "main.rs", Line: 12, Text: "cierra la conexión"},
			},
		},
	}

	for _, fc := range rep.FileCounts("es") {
		fmt.Printf("%s: %d\n", fc.File, fc.Count)
	}
	// Output:
	// main.rs: 2
	// lib.rs: 1
}
