package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/anantdinesh/selfreferral/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

type bmiPreviewRequest struct {
	HeightFeet   int     `json:"height_feet"`
	HeightInches int     `json:"height_inches"`
	WeightPounds float64 `json:"weight_pounds"`
}

type bmiPreviewResponse struct {
	BMI *float64 `json:"bmi"`
}

type RealtimeController struct{}

func NewRealtimeController() *RealtimeController {
	return &RealtimeController{}
}

// BMIPreviewWS handles GET /ws/bmi. The form client streams height/weight
// edits and gets the recalculated BMI back for the live readout; null means
// BMI is undefined for the values entered so far.
func (rc *RealtimeController) BMIPreviewWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// ping to keep connections alive through some proxies
	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		var req bmiPreviewRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		var resp bmiPreviewResponse
		if v, ok := utils.CalculateBMI(req.HeightFeet, req.HeightInches, req.WeightPounds); ok {
			resp.BMI = &v
		}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}
