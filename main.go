package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"github.com/tjjh89017/trafficlight-go/internal/config"
)

func main() {
	fmt.Println("Traffic Light Go")

	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	if err := config.BindFlags(fs); err != nil {
		log.Panic(err)
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Panic(err)
	}

	d, err := setup()
	if err != nil {
		log.Panic(err)
	}

	if err := d.Execute(context.Background()); err != nil {
		log.Fatal(err)
	}
}
