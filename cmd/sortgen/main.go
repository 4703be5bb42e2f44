// Copyright 2026 go-sorts Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sortgen generates per-concrete-type wrapper functions for the
// generic sorters, in the z_*.go file convention used across this module.
//
// Usage:
//
//	sortgen -pkg library -func Sort -types int,float64,string -output z_library_types.go
//
// Or via go:generate in the target package:
//
//	//go:generate go run ../../cmd/sortgen -pkg library -func Sort -types int,float64,string -output z_library_types.go
//
// The wrappers mirror the stdlib sort.Ints-style API (SortInts, SortFloat64s,
// SortStrings, ...) so callers can avoid spelling out type parameters.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	pkgName  = flag.String("pkg", "", "Target package name (required)")
	funcName = flag.String("func", "Sort", "Generic function to wrap")
	typeList = flag.String("types", "", "Comma-separated element types (required)")
	output   = flag.String("output", "", "Output file (required)")
)

func main() {
	flag.Parse()

	if *pkgName == "" || *typeList == "" || *output == "" {
		fmt.Fprintf(os.Stderr, "Error: -pkg, -types and -output are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Package: *pkgName,
		Func:    *funcName,
		Types:   splitTypes(*typeList),
		Output:  *output,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func splitTypes(list string) []string {
	var types []string
	for _, t := range strings.Split(list, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}
