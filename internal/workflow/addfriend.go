package workflow

// Draft is a candidate friend produced by the add-friend form. The roster
// assigns the ID and balance.
type Draft struct {
	Name  string
	Image string
}

// AddFriendForm is the draft state of the add-friend form.
type AddFriendForm struct {
	Name    string
	Image   string
	visible bool
}

// Visible reports whether the form is open.
func (f *AddFriendForm) Visible() bool {
	return f.visible
}

// Open shows the form.
func (f *AddFriendForm) Open() {
	f.visible = true
}

// Close hides the form. The draft is kept.
func (f *AddFriendForm) Close() {
	f.visible = false
}

// Toggle flips visibility and returns the new state.
func (f *AddFriendForm) Toggle() bool {
	f.visible = !f.visible
	return f.visible
}

// Dismiss clears the draft and hides the form.
func (f *AddFriendForm) Dismiss() {
	f.Name = ""
	f.Image = ""
	f.visible = false
}

// Submit returns the draft and clears both fields. If either field is empty
// nothing is produced and the draft is left as is.
func (f *AddFriendForm) Submit() (Draft, bool) {
	if f.Name == "" || f.Image == "" {
		return Draft{}, false
	}

	d := Draft{Name: f.Name, Image: f.Image}
	f.Name = ""
	f.Image = ""
	return d, true
}
