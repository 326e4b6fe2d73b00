package cmd

import (
	"fmt"
	"os"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hamming74",
	Short: "A Hamming(7,4) codec",
	Long: `hamming74 encodes 4 bit messages into 7 bit codewords, checks and decodes
received codewords, injects faults and simulates noisy channels.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hamming74.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose info")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs as json to this file")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".hamming74")
	}

	viper.SetEnvPrefix("hamming74")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("Using config file: %v", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	if verbose || viper.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if logFile == "" {
		return
	}
	logrus.AddHook(logFileHook(logFile))
}

// logFileHook writes entries of every level to path as json.
func logFileHook(path string) logrus.Hook {
	return lfshook.NewHook(
		lfshook.PathMap{
			logrus.TraceLevel: path,
			logrus.DebugLevel: path,
			logrus.InfoLevel:  path,
			logrus.WarnLevel:  path,
			logrus.ErrorLevel: path,
			logrus.FatalLevel: path,
			logrus.PanicLevel: path,
		},
		&logrus.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
}
