// Command ptp-server exposes a PTP/USB still-image device over HTTP.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	yml "gopkg.in/yaml.v2"

	"github.com/nasa-jpl/go-ptp/ptp"
	"github.com/nasa-jpl/go-ptp/ptp/ptphttp"
	"github.com/nasa-jpl/go-ptp/ptp/usbtransport"
)

var (
	// Version is the version number. Injected via ldflags with git build.
	Version = "1"

	// ConfigFileName is the on-disk config file this command reads.
	ConfigFileName = "ptp-server.yml"
	k              = koanf.New(".")
)

type config struct {
	Addr      string `yaml:"Addr"`
	VendorID  uint16 `yaml:"VendorID"`
	ProductID uint16 `yaml:"ProductID"`
}

func setupconfig() {
	k.Load(structs.Provider(config{
		Addr:      ":8080",
		VendorID:  0x0000,
		ProductID: 0x0000,
	}, "koanf"), nil)
	if err := k.Load(file.Provider(ConfigFileName), yaml.Parser()); err != nil {
		errtxt := err.Error()
		if !strings.Contains(errtxt, "no such") {
			log.Fatalf("error loading config: %v", err)
		}
	}
}

func root() {
	str := `ptp-server exposes control of a PTP/USB still-image device over HTTP.

Usage:
	ptp-server <command>

Commands:
	run
	help
	mkconf
	conf
	version`
	fmt.Println(str)
}

func help() {
	str := `ptp-server is configured via its .yaml file. mkconf writes the
defaults to disk; edit VendorID/ProductID (both hex-as-decimal in YAML,
e.g. 1356 for 0x054C) to match your device, then run.`
	fmt.Println(str)
}

func mkconf() {
	c := config{}
	if err := k.Unmarshal("", &c); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(ConfigFileName)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := yml.NewEncoder(f).Encode(c); err != nil {
		log.Fatal(err)
	}
}

func printconf() {
	c := config{}
	if err := k.Unmarshal("", &c); err != nil {
		log.Fatal(err)
	}
	if err := yml.NewEncoder(os.Stdout).Encode(c); err != nil {
		log.Fatal(err)
	}
}

func pversion() {
	fmt.Printf("ptp-server version %v\n", Version)
}

type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...interface{}) { log.Printf("debug: "+format, args...) }
func (stdLogger) Errorf(format string, args ...interface{}) { log.Printf("error: "+format, args...) }

func run() {
	cfg := config{}
	if err := k.Unmarshal("", &cfg); err != nil {
		log.Fatal(err)
	}

	dev, err := usbtransport.Open(cfg.VendorID, cfg.ProductID)
	if err != nil {
		log.Fatalf("error opening PTP device: %v", err)
	}
	defer dev.Close()

	session := ptp.NewSession(dev, dev.InterfaceNumber(), dev.Endpoints(), stdLogger{})
	if err := session.OpenSession(); err != nil {
		log.Fatalf("error opening PTP session: %v", err)
	}
	defer session.Disconnect()

	h := ptphttp.NewHandler(session)
	mux := chi.NewRouter()
	h.RT().Bind(mux)

	log.Println("now listening for requests at", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}

func main() {
	args := os.Args
	if len(args) == 1 {
		root()
		return
	}
	setupconfig()
	cmd := strings.ToLower(args[1])
	switch cmd {
	case "help":
		help()
	case "mkconf":
		mkconf()
	case "conf":
		printconf()
	case "run":
		run()
	case "version":
		pversion()
	default:
		log.Fatal("unknown command")
	}
}
