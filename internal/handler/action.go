package handler

import "fmt"

// Action is a main menu entry
type Action int

const (
	ActionCreateDeck Action = iota + 1
	ActionViewDecks
	ActionAddFlashcard
	ActionStudyDeck
	ActionViewProgress
	ActionDeleteDeck
	ActionDeleteFlashcard
	ActionImportDeck
	ActionExportDeck
	ActionExit
)

// Actions lists the menu entries in display order
func Actions() []Action {
	return []Action{
		ActionCreateDeck,
		ActionViewDecks,
		ActionAddFlashcard,
		ActionStudyDeck,
		ActionViewProgress,
		ActionDeleteDeck,
		ActionDeleteFlashcard,
		ActionImportDeck,
		ActionExportDeck,
		ActionExit,
	}
}

// String returns the menu label of the action
func (a Action) String() string {
	switch a {
	case ActionCreateDeck:
		return "Create Deck 📚"
	case ActionViewDecks:
		return "View Decks 👀"
	case ActionAddFlashcard:
		return "Add Flashcard 🃏"
	case ActionStudyDeck:
		return "Study Deck 🧠"
	case ActionViewProgress:
		return "View Progress 📊"
	case ActionDeleteDeck:
		return "Delete Deck 🗑️"
	case ActionDeleteFlashcard:
		return "Delete Flashcard 🗑️🃏"
	case ActionImportDeck:
		return "Import Deck 📥"
	case ActionExportDeck:
		return "Export Deck 📤"
	case ActionExit:
		return "Exit 👋"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

func menuLabels() []string {
	actions := Actions()
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.String()
	}
	return labels
}
