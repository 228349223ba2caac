// Command announce is a round hook that reads the result aloud.
//
// Build it next to its manifest and copy the directory into the hooks
// directory:
//
//	go build -o announce . && cp -r . ~/.handrps/hooks/announce
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/ayusman/handrps/internal/hook"
)

func main() {
	var event hook.Event
	if err := json.NewDecoder(os.Stdin).Decode(&event); err != nil {
		writeResponse(hook.Response{Error: fmt.Sprintf("failed to decode event: %v", err)})
		return
	}

	if err := speak(phrase(event)); err != nil {
		writeResponse(hook.Response{Error: err.Error()})
		return
	}

	writeResponse(hook.Response{Success: true})
}

// phrase turns a round into a sentence such as "rock beats scissors, you win".
func phrase(e hook.Event) string {
	player, bot := strings.ToLower(e.Player), strings.ToLower(e.Bot)
	switch e.Outcome {
	case "YOU WIN":
		return fmt.Sprintf("%s beats %s, you win", player, bot)
	case "BOT WINS":
		return fmt.Sprintf("%s beats %s, bot wins", bot, player)
	default:
		return fmt.Sprintf("%s and %s, draw", player, bot)
	}
}

func speak(text string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("say", text)
	case "windows":
		cmd = exec.Command("powershell", "-Command",
			"Add-Type -AssemblyName System.Speech; (New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak('"+text+"')")
	default:
		cmd = exec.Command("spd-say", "--wait", text)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, string(output))
	}
	return nil
}

func writeResponse(resp hook.Response) {
	json.NewEncoder(os.Stdout).Encode(resp)
}
