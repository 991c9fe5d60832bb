// Command chat is a terminal client for the StudyBot realtime API. It
// mirrors the web client's connection behavior, including backoff
// reconnects on abnormal closure.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	internalWS "github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/websocket"

	"github.com/coder/websocket"
	"github.com/fatih/color"
)

var (
	agentColors = map[string]*color.Color{
		"explainer": color.New(color.FgBlue, color.Bold),
		"quiz":      color.New(color.FgGreen, color.Bold),
		"checker":   color.New(color.FgMagenta, color.Bold),
		"motivator": color.New(color.FgYellow, color.Bold),
		"memory":    color.New(color.FgWhite, color.Bold),
	}
	dimColor   = color.New(color.Faint)
	errorColor = color.New(color.FgRed, color.Bold)
)

func main() {
	serverURL := flag.String("url", "ws://localhost:3000/ws", "websocket endpoint")
	userId := flag.String("user", "", "user id (uuid, optional)")
	conversationId := flag.String("conversation", "", "conversation id (uuid, optional)")
	flag.Parse()

	url := *serverURL
	sep := "?"
	if *userId != "" {
		url += sep + "userId=" + *userId
		sep = "&"
	}
	if *conversationId != "" {
		url += sep + "conversationId=" + *conversationId
	}

	input := make(chan string)
	go readInput(input)

	time.Sleep(internalWS.InitialConnectDelay)

	attempt := 0
	for {
		code, err := runSession(url, input)
		if err != nil {
			errorColor.Printf("connection error: %v\n", err)
		}
		if internalWS.TerminalCloseCode(code) {
			dimColor.Println("connection closed")
			return
		}
		if attempt >= internalWS.MaxReconnectAttempts {
			errorColor.Println("reconnect attempts exhausted")
			return
		}
		delay := internalWS.ReconnectDelay(attempt)
		attempt++
		dimColor.Printf("reconnecting in %s (attempt %d/%d)...\n", delay, attempt, internalWS.MaxReconnectAttempts)
		time.Sleep(delay)
	}
}

// runSession dials and pumps one connection until it drops. Returns the
// close code, or -1 when it cannot be determined.
func runSession(url string, input <-chan string) (int, error) {
	ctx := context.Background()

	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return -1, err
	}
	defer conn.Close(websocket.StatusInternalError, "client shutdown")

	dimColor.Printf("connected to %s\n", url)

	received := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				readErr <- err
				return
			}
			received <- data
		}
	}()

	for {
		select {
		case data := <-received:
			printEnvelope(data)
		case err := <-readErr:
			return int(websocket.CloseStatus(err)), err
		case line, ok := <-input:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "bye")
				return 1000, nil
			}
			env := internalWS.Envelope{Type: internalWS.TypeUserMessage, Content: line}
			payload, _ := json.Marshal(env)
			if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
				return int(websocket.CloseStatus(err)), err
			}
		}
	}
}

func readInput(out chan<- string) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}
		out <- line
	}
	close(out)
}

func printEnvelope(data []byte) {
	var env internalWS.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		dimColor.Printf("<< %s\n", data)
		return
	}

	switch env.Type {
	case internalWS.TypeTypingStart:
		dimColor.Println("... thinking")
	case internalWS.TypeTypingEnd:
		// Silent; the response follows immediately.
	case internalWS.TypeAgentResponse:
		c, ok := agentColors[env.AgentType]
		if !ok {
			c = agentColors["explainer"]
		}
		c.Printf("[%s] ", env.AgentType)
		fmt.Println(env.Content)
	case internalWS.TypeError:
		errorColor.Println(env.Content)
	default:
		dimColor.Printf("<< %s\n", data)
	}
}
