// Command utmconv converts single points between WGS84 latitude/longitude
// and UTM grid coordinates.
package main

import "github.com/tzneal/utm/internal/cli"

func main() {
	cli.Execute()
}
