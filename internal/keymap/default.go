package keymap

// Default returns the built-in keymaps: keyboard-driven browsing
// bindings for normal, insert, and command modes.
func Default() []*Keymap {
	normal := NewKeymap("default-normal").ForMode("normal").WithSource("default")
	normal.
		AddBinding(NewBinding("gg", "scroll-top").WithDescription("Scroll to the top of the page")).
		AddBinding(NewBinding("G", "scroll-bottom").WithDescription("Scroll to the bottom of the page")).
		AddBinding(NewBinding("j", "scroll-down").WithDescription("Scroll down")).
		AddBinding(NewBinding("k", "scroll-up").WithDescription("Scroll up")).
		AddBinding(NewBinding("h", "scroll-left").WithDescription("Scroll left")).
		AddBinding(NewBinding("l", "scroll-right").WithDescription("Scroll right")).
		AddBinding(NewBinding("H", "history-back").WithDescription("Go back in history")).
		AddBinding(NewBinding("L", "history-forward").WithDescription("Go forward in history")).
		AddBinding(NewBinding("J", "tab-next").WithDescription("Switch to the next tab")).
		AddBinding(NewBinding("K", "tab-prev").WithDescription("Switch to the previous tab")).
		AddBinding(NewBinding("d", "tab-close").WithDescription("Close the current tab")).
		AddBinding(NewBinding("u", "undo").WithDescription("Re-open the last closed tab")).
		AddBinding(NewBinding("o", "prompt-open").WithDescription("Open a URL")).
		AddBinding(NewBinding("O", "prompt-open-tab").WithDescription("Open a URL in a new tab")).
		AddBinding(NewBinding("r", "reload").WithDescription("Reload the page")).
		AddBinding(NewBinding("yy", "yank-url").WithDescription("Yank the page URL")).
		AddBinding(NewBinding("f", "hint").WithDescription("Follow a link by hint")).
		AddBinding(NewBinding("/", "prompt-search").WithDescription("Search the page")).
		AddBinding(NewBinding("n", "search-next").WithDescription("Next search result")).
		AddBinding(NewBinding("N", "search-prev").WithDescription("Previous search result")).
		AddBinding(NewBinding(":", "enter-command").WithDescription("Enter command mode")).
		AddBinding(NewBinding("i", "enter-insert").WithDescription("Enter insert mode")).
		AddBinding(NewBinding("<Ctrl-x><Ctrl-s>", "session-save").WithDescription("Save the session")).
		AddBinding(NewBinding("<Ctrl-q>", "quit").WithDescription("Quit"))

	insert := NewKeymap("default-insert").ForMode("insert").WithSource("default")
	insert.
		AddBinding(NewBinding("<Escape>", "leave-insert").WithDescription("Leave insert mode")).
		AddBinding(NewBinding("<Ctrl-e>", "edit-external").WithDescription("Edit the field in an external editor"))

	command := NewKeymap("default-command").ForMode("command").WithSource("default")
	command.
		AddBinding(NewBinding("<Return>", "command-accept").WithDescription("Run the entered command")).
		AddBinding(NewBinding("<Escape>", "leave-command").WithDescription("Leave command mode")).
		AddBinding(NewBinding("<Up>", "completion-prev").WithDescription("Previous completion")).
		AddBinding(NewBinding("<Down>", "completion-next").WithDescription("Next completion"))

	return []*Keymap{normal, insert, command}
}

// RegisterDefaults registers the built-in keymaps on a registry.
func RegisterDefaults(registry *Registry) error {
	for _, km := range Default() {
		if err := registry.Register(km); err != nil {
			return err
		}
	}
	return nil
}
