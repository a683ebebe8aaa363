package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	envFile     string
	logLevelInt int
	prettyLogs  bool

	rootCmd = &cobra.Command{
		Use:   "ligue-crm",
		Short: "CRM API: email documents, lead notifications, login and call listing.",
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "The env file to read.")
	rootCmd.PersistentFlags().IntVar(&logLevelInt, "log", int(zerolog.InfoLevel), "The logging level to use.")
	rootCmd.PersistentFlags().BoolVar(&prettyLogs, "pretty", false, "Human readable console logs.")

	rootCmd.AddCommand(serveCmd, mailTestCmd)
}

func initConfig() {
	zerolog.SetGlobalLevel(zerolog.Level(logLevelInt))
	if prettyLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := godotenv.Load(envFile); err != nil {
		log.Info().Err(err).Str("file", envFile).Msg("env file not loaded")
	}
}
