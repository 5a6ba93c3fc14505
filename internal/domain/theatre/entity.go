package theatre

import "strings"

// Theatre は劇場エンティティ。シード後は変更されない
type Theatre struct {
	Name     string
	Location string
}

// New は前後の空白を除いた劇場を作成する
func New(name, location string) Theatre {
	return Theatre{Name: strings.TrimSpace(name), Location: strings.TrimSpace(location)}
}

// Validate は劇場の検証を行う
func (t Theatre) Validate() error {
	if t.Name == "" {
		return ErrNameRequired
	}
	return nil
}

// DefaultRoster は初期投入する劇場一覧（順序付き）
func DefaultRoster() []Theatre {
	return []Theatre{
		{Name: "Rajah", Location: "Jaffna"},
		{Name: "CineCity Cinema", Location: "Maradana"},
		{Name: "CPVR Cinema", Location: "One Galle Face Mall"},
		{Name: "Regal Cinema", Location: "Jaffna"},
		{Name: "Samantha Cinema", Location: "Dematagoda"},
	}
}

// ValidateRoster はシード用の劇場一覧を検証する
func ValidateRoster(roster []Theatre) error {
	if len(roster) == 0 {
		return ErrRosterEmpty
	}
	seen := make(map[string]struct{}, len(roster))
	for _, t := range roster {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := seen[t.Name]; ok {
			return ErrDuplicateName
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}
