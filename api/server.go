package api

import (
    "encoding/json"
    "log"
    "net/http"

    "github.com/matt-g-everett/sketchtx/reveal"
)

type Api struct {
    controller *reveal.Controller
}

func NewApi(controller *reveal.Controller) *Api {
    a := new(Api)
    a.controller = controller
    return a
}

func (a *Api) handleAnimations(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    if err := json.NewEncoder(w).Encode(a.controller.States()); err != nil {
        log.Printf("Failed to encode animation states: %v", err)
    }
}

func (a *Api) Serve() {
    http.HandleFunc("/animations", a.handleAnimations)

    log.Println("Listening...")
    http.ListenAndServe(":3000", nil)
}
