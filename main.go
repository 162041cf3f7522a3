package main

import (
    "flag"
    "log"
    "os"
    "time"

    "github.com/eclipse/paho.mqtt.golang"
    "github.com/matt-g-everett/sketchtx/api"
    "github.com/matt-g-everett/sketchtx/reveal"
    "gopkg.in/yaml.v2"
)

type app struct {
    Config     reveal.Config
    Client     mqtt.Client
    Controller *reveal.Controller
    Streamer   *reveal.Streamer
}

func newApp() *app {
    a := new(app)
    return a
}

// scene logs detachments; a real host would drop the object from its
// scene graph here.
type scene struct{}

func (scene) Detach(m *reveal.Mobject) {
    log.Printf("Detached %s", m.ID)
}

func (a *app) handleOnConnect(client mqtt.Client) {
    log.Println("Connected")
    a.Streamer.Subscribe()
}

func (a *app) run() {
    if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
        panic(token.Error())
    }

    // Kick off a demo write so a renderer has something to show
    // before any control messages arrive.
    a.Streamer.Queue(reveal.PlayCommand{Object: "title", Variant: "write"})

    a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
    f, err := os.Open(configPath)
    if err != nil {
        panic(err)
    }

    decoder := yaml.NewDecoder(f)
    err = decoder.Decode(&a.Config)
    if err != nil {
        panic(err)
    }
}

func main() {
    mqtt.ERROR = log.New(os.Stdout, "", 0)

    // Parse command line parameters
    configPath := flag.String("config", "config.yaml", "YAML config file.")
    flag.Parse()

    // Read the config
    a := newApp()
    a.readConfig(*configPath)
    log.Printf("Config: %+v", a.Config)

    options := mqtt.NewClientOptions().
        AddBroker(a.Config.Mqtt.URL).
        SetClientID("sketchtx").
        SetUsername(a.Config.Mqtt.Username).
        SetPassword(a.Config.Mqtt.Password).
        SetKeepAlive(30 * time.Second).
        SetPingTimeout(5 * time.Second).
        SetOnConnectHandler(a.handleOnConnect)
    client := mqtt.NewClient(options)

    a.Client = client
    a.Controller = reveal.NewController(scene{})
    a.Streamer = reveal.NewStreamer(a.Config, client, a.Controller)

    // Objects the control topic can animate.
    a.Streamer.Register(reveal.NewText("title", "hello sketchrx"))
    a.Streamer.Register(reveal.NewGroup("square",
        reveal.NewLeaf("square.top", 1),
        reveal.NewLeaf("square.right", 1),
        reveal.NewLeaf("square.bottom", 1),
        reveal.NewLeaf("square.left", 1)))

    server := api.NewApi(a.Controller)
    go server.Serve()

    a.run()
}
