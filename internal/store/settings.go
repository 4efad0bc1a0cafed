package store

import (
	"context"
	"fmt"

	"github.com/hyejin/orbquest/ent"
	"github.com/hyejin/orbquest/ent/setting"
)

// Keys for the persisted tutorial flags.
const (
	keyHasSeenHomeTutorial = "has_seen_home_tutorial"
	keyHasSeenARTutorial   = "has_seen_ar_tutorial"
)

type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) TutorialFlags(ctx context.Context) (TutorialFlags, error) {
	var flags TutorialFlags

	home, err := r.getBool(ctx, keyHasSeenHomeTutorial)
	if err != nil {
		return flags, err
	}
	ar, err := r.getBool(ctx, keyHasSeenARTutorial)
	if err != nil {
		return flags, err
	}

	flags.HasSeenHomeTutorial = home
	flags.HasSeenARTutorial = ar
	return flags, nil
}

func (r *settingsRepo) SetHasSeenHomeTutorial(ctx context.Context, seen bool) error {
	return r.setBool(ctx, keyHasSeenHomeTutorial, seen)
}

func (r *settingsRepo) SetHasSeenARTutorial(ctx context.Context, seen bool) error {
	return r.setBool(ctx, keyHasSeenARTutorial, seen)
}

func (r *settingsRepo) getBool(ctx context.Context, key string) (bool, error) {
	s, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return s.Value == "true", nil
}

func (r *settingsRepo) setBool(ctx context.Context, key string, v bool) error {
	value := "false"
	if v {
		value = "true"
	}

	n, err := r.client.Setting.Update().
		Where(setting.Key(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %s: %w", key, err)
	}
	if n == 0 {
		if err := r.client.Setting.Create().SetKey(key).SetValue(value).Exec(ctx); err != nil {
			return fmt.Errorf("create setting %s: %w", key, err)
		}
	}
	return nil
}
