package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		if m.frameIdx < len(m.frames)-1 {
			m.frameIdx++
			return m, m.tickCmd()
		}
		m.playing = false
		m.status = "journey complete — r to restart"
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore
		// global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case " ":
			if len(m.frames) == 0 {
				m.status = "no journey loaded"
				return m, nil
			}
			if m.playing {
				m.playing = false
				m.status = "paused"
				return m, nil
			}
			if m.frameIdx >= len(m.frames)-1 {
				m.frameIdx = 0
			}
			m.playing = true
			m.status = "playing"
			return m, m.tickCmd()
		case "r":
			if len(m.frames) == 0 {
				return m, nil
			}
			m.frameIdx = 0
			m.playing = false
			m.status = "restarted"
		case "right":
			if len(m.frames) > 0 && m.frameIdx < len(m.frames)-1 {
				m.frameIdx++
				m.playing = false
			}
		case "left":
			if len(m.frames) > 0 && m.frameIdx > 0 {
				m.frameIdx--
				m.playing = false
			}
		case "home":
			if len(m.frames) > 0 {
				m.frameIdx = 0
				m.playing = false
			}
		case "end":
			if len(m.frames) > 0 {
				m.frameIdx = len(m.frames) - 1
				m.playing = false
			}
		case "[":
			if m.fps > 1 {
				m.fps--
				m.status = fmt.Sprintf("speed: %d fps", m.fps)
			}
		case "]":
			if m.fps < 60 {
				m.fps++
				m.status = fmt.Sprintf("speed: %d fps", m.fps)
			}
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "k":
			m.offsetY -= 1
		case "j":
			m.offsetY += 1
		case "h":
			m.offsetX -= 2
		case "l":
			m.offsetX += 2
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadJourney(it.path)
				}
			}
		case "a":
			m.showLegs = !m.showLegs
			if m.showLegs {
				m.refreshLegsTable()
			}
		case "?":
			m.helpVisible = !m.helpVisible
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
