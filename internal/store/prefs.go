package store

// Scalar preference slots: theme, color theme, and the sealed API key.
// Each is independent of the others and of the entries/moods snapshots.

// Theme returns the persisted theme name, or "" when unset.
func (d *DB) Theme() (string, error) {
	v, _, err := d.getSlot(slotTheme)
	return v, err
}

// SetTheme persists the theme slot.
func (d *DB) SetTheme(name string) error {
	return d.setSlot(slotTheme, name)
}

// ColorTheme returns the persisted color-theme name, or "" when unset.
func (d *DB) ColorTheme() (string, error) {
	v, _, err := d.getSlot(slotColorTheme)
	return v, err
}

// SetColorTheme persists the color-theme slot.
func (d *DB) SetColorTheme(name string) error {
	return d.setSlot(slotColorTheme, name)
}

// APIKey returns the stored credential, unsealed, or "" when none is stored
// or the sealed value cannot be opened (a reset salt file makes old values
// unreadable; that is treated as "no key").
func (d *DB) APIKey() (string, error) {
	v, ok, err := d.getSlot(slotAPIKey)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return "", nil
	}
	s, err := newSealer(d.dir)
	if err != nil {
		return "", err
	}
	key, err := s.open(v)
	if err != nil {
		return "", nil
	}
	return key, nil
}

// SetAPIKey seals and persists the credential.
func (d *DB) SetAPIKey(key string) error {
	s, err := newSealer(d.dir)
	if err != nil {
		return err
	}
	sealed, err := s.seal(key)
	if err != nil {
		return err
	}
	return d.setSlot(slotAPIKey, sealed)
}

// ClearAPIKey removes the credential slot.
func (d *DB) ClearAPIKey() error {
	return d.deleteSlot(slotAPIKey)
}
