package reveal

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// A PlayCommand is the JSON control message that starts an animation
// on a registered object.
type PlayCommand struct {
	Object    string  `json:"object"`
	Variant   string  `json:"variant"`
	RunTimeMs int64   `json:"runTimeMs"`
	LagRatio  float64 `json:"lagRatio"`
}

// A Streamer ticks the playback controller at the configured frame
// rate and streams bounds frames to a sketchrx renderer over MQTT.
// All controller access happens on the Run goroutine, so the engine
// sees strictly serial ticks.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller *Controller
	objects    map[string]*Mobject
	started    map[string]int64
	handles    []string
	commands   chan PlayCommand
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, controller *Controller) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = controller
	s.objects = make(map[string]*Mobject)
	s.started = make(map[string]int64)
	s.commands = make(chan PlayCommand, 8)
	return s
}

// Register adds an object that control messages can animate.
func (s *Streamer) Register(m *Mobject) {
	s.objects[m.ID] = m
}

// Subscribe attaches the control topic handler.
func (s *Streamer) Subscribe() {
	s.client.Subscribe(s.config.Mqtt.Topics.Control, 1, s.handleControlMessage)
}

func (s *Streamer) handleControlMessage(client mqtt.Client, msg mqtt.Message) {
	var cmd PlayCommand
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		log.Printf("Bad control message: %v", err)
		return
	}
	s.commands <- cmd
}

// Queue submits a command to the Run loop from another goroutine.
func (s *Streamer) Queue(cmd PlayCommand) {
	s.commands <- cmd
}

// Play starts the animation described by cmd and returns its handle.
func (s *Streamer) Play(cmd PlayCommand) (string, error) {
	target, ok := s.objects[cmd.Object]
	if !ok {
		return "", fmt.Errorf("reveal: unknown object %q", cmd.Object)
	}
	kind, ok := VariantByName(cmd.Variant)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, cmd.Variant)
	}
	anim, err := NewVariantAnimation(kind, target, cmd.RunTimeMs, cmd.LagRatio)
	if err != nil {
		return "", err
	}
	handle, err := s.controller.Play(anim)
	if err != nil {
		return "", err
	}

	s.started[handle] = time.Now().UnixMilli()
	s.handles = append(s.handles, handle)
	log.Printf("Playing %s on %s as %s", cmd.Variant, cmd.Object, handle)
	return handle, nil
}

// SendFrames ticks every running animation once and publishes the
// resulting frames as binary over MQTT.
func (s *Streamer) SendFrames(nowMs int64) {
	live := s.handles[:0]
	for _, handle := range s.handles {
		frame, err := s.controller.Tick(handle, nowMs-s.started[handle])
		if err != nil {
			log.Printf("Dropping animation %s: %v", handle, err)
			delete(s.started, handle)
			continue
		}

		if len(frame.Rows) > 0 {
			b, _ := frame.MarshalBinary()
			token := s.client.Publish(s.config.Mqtt.Topics.Frames, 1, false, b)
			token.Wait()
		}

		if s.controller.IsComplete(handle) {
			log.Printf("Animation %s complete", handle)
			s.controller.Forget(handle)
			delete(s.started, handle)
			continue
		}
		live = append(live, handle)
	}
	s.handles = live
}

// Run pumps control commands and frame ticks continuously.
func (s *Streamer) Run() {
	frameTimer := time.NewTicker(time.Duration(s.config.FrameInterval() * float64(time.Second)))
	for {
		select {
		case cmd := <-s.commands:
			if _, err := s.Play(cmd); err != nil {
				log.Printf("Control command rejected: %v", err)
			}
		case <-frameTimer.C:
			s.SendFrames(time.Now().UnixMilli())
		}
	}
}
