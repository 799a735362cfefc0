// Send Apple Push notification
//
//  ./push [-params] <token> [<token2> [...]]
//    -t    use development service
//    -b badge
//          badge number
//    -c certificate
//          push certificate (default "cert.p12")
//    -f file
//          JSON file with push payload
//    -p password
//          certificate password
//    -a text
//          message text (default "Hello!")
//    -i topic
//          topic id (default: bundle id from the certificate)
//
//  Sample JSON file:
//    {
//      "aps": {
//        "alert": "message",
//        "badge": 0
//      }
//    }
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	kitlog "github.com/go-kit/log"
	apns "github.com/mdigger/apns2"
)

func main() {
	certFileName := flag.String("c", "cert.p12", "push `certificate`")
	password := flag.String("p", "", "certificate `password`")
	development := flag.Bool("t", false, "use sandbox service")
	payloadFileName := flag.String("f", "", "JSON `file` with push payload")
	alert := flag.String("a", "Hello!", "message `text`")
	badge := flag.Int("b", 0, "`badge` number")
	topic := flag.String("i", "", "`topic` id")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "Send Apple Push notification\n")
		fmt.Fprintf(os.Stderr, "%s [-params] <token> [<token2> [...]]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\n"+`Sample JSON file:
  {
    "aps": {
      "alert": "message",
      "badge": 0
    }
  }`)
	}
	flag.Parse()
	log.SetFlags(0)

	if flag.NArg() < 1 {
		log.Fatalln("Error: no tokens")
	}
	tokens := flag.Args()
	var payload map[string]interface{}
	if *payloadFileName != "" {
		data, err := os.ReadFile(*payloadFileName)
		if err != nil {
			log.Fatalln("Error loading push file:", err)
		}
		if err = json.Unmarshal(data, &payload); err != nil {
			log.Fatalln("Error parsing push file:", err)
		}
	}
	client, err := apns.WithCertificate(*certFileName, *password)
	if err != nil {
		log.Fatalln("Error loading certificate:", err)
	}
	client.SetLogger(kitlog.NewLogfmtLogger(os.Stderr))
	if *development {
		client.Host = apns.HostDevelopment
	}
	if info := client.CertificateInfo; info != nil {
		log.Println("Certificate:", info)
		if *topic != "" && !info.Support(*topic) {
			log.Fatalln("Error: certificate does not support topic", *topic)
		}
	}
	ctx := context.Background()
	for _, token := range tokens {
		var n apns.Notification
		if payload != nil {
			n = apns.Notification{Topic: *topic, Token: token, Payload: payload}
		} else {
			n = apns.NewBuilder(*topic, token).
				Alert(*alert).
				Badge(*badge).
				Build()
		}
		id, err := client.Push(ctx, n)
		if err != nil {
			log.Println("Error:", err)
			break
		}
		log.Println("Sent:", id)
	}
	log.Println("Complete!")
}
