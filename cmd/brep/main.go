// Command brep is the model host: it builds the built-in demo models
// through the kernel and exports the results for external viewers.
package main

func main() {
	Execute()
}
