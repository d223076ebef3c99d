// Command activos es la consola de línea de comandos del sistema de activos fijos municipales.
package main

import "os"

func main() {
	os.Exit(ejecutar(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
