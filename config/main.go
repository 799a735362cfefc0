// Creates a new configuration file from the specified certificate files.
//
// If the bundle id is not specified, the application tries to find it
// directly in the certificate file. This is not guaranteed to work, so
// always check that the resulting bundle id is correct.
//
// Note that the certificate files must not require a password: otherwise
// the application will not be able to read them.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	apns "github.com/mdigger/apns2"
)

func main() {
	certFile := flag.String("cert", "cert.pem", "certificate file name")
	keyFile := flag.String("key", "key.pem", "private key file name")
	sandbox := flag.Bool("sandbox", true, "sandbox mode")
	bundleID := flag.String("bundle", "", "bundle id (if empty trying to find in certificate file info)")
	outputFile := flag.String("output", "config.json", "output filename")
	flag.Parse()

	config, err := apns.CreateConfig(*bundleID, *certFile, *keyFile, *sandbox)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	data, err := json.MarshalIndent(config, "", "\t")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err := os.WriteFile(*outputFile, data, 0600); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Created:", *outputFile)
}
