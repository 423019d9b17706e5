package main

import (
	"context"
	"flag"
	"fmt"
	l "log"
	"partyinbangalore-backend/config"
	c "partyinbangalore-backend/context"
	"partyinbangalore-backend/router"

	"github.com/codegangsta/negroni"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	version string
)

const defaultCorrelationID = "00000000.00000000"

var ctx context.Context

func init() {
	ctx = c.SetContextWithValue(context.Background(), c.ContextKeyCorrelationID, defaultCorrelationID)
}

func main() {
	cfgPath := flag.String("CONFIG_PATH", "./config.yaml", "Path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		l.Println("no .env file found, relying on the environment")
	}

	viper.SetConfigFile(*cfgPath)
	if err := viper.ReadInConfig(); err != nil {
		l.Println("no config file found, relying on the environment")
	}

	muxRouter := router.Router(ctx)

	n := negroni.New()
	n.UseHandler(muxRouter)
	n.Run(fmt.Sprintf(":%s", viper.GetString(config.Port)))
}
