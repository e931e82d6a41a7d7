package confgen

import (
	"errors"
	"testing"
)

func TestCenterIndexTable(t *testing.T) {
	cases := []struct {
		channel, width, want int
		ok                   bool
	}{
		{36, Width80, 42, true},
		{48, Width80, 42, true},
		{64, Width80, 58, true},
		{100, Width80, 106, true},
		{128, Width80, 122, true},
		{144, Width80, 138, true},
		{157, Width80, 155, true},
		{165, Width80, 0, false},
		{40, Width160, 50, true},
		{116, Width160, 114, true},
		{149, Width160, 0, false},
		{36, Width20or40, 0, false},
	}
	for _, tc := range cases {
		got, ok := CenterIndex(tc.channel, tc.width)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("CenterIndex(%d,%d)=%d,%v want %d,%v", tc.channel, tc.width, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHT40Tables(t *testing.T) {
	if !IsHT40Plus(36) || IsHT40Plus(40) || !IsHT40Minus(40) || IsHT40Minus(165) {
		t.Fatalf("unexpected HT40 classification")
	}
}

func TestChannelSwitchCenter(t *testing.T) {
	center, offset, err := ChannelSwitchCenter(36, 5180)
	if err != nil || center != 5210 || offset != 1 {
		t.Fatalf("chan 36: %d %d %v", center, offset, err)
	}
	center, offset, err = ChannelSwitchCenter(44, 5220)
	if err != nil || center != 5210 || offset != 1 {
		t.Fatalf("chan 44: %d %d %v", center, offset, err)
	}
	center, offset, err = ChannelSwitchCenter(40, 5200)
	if err != nil || center != 5210 || offset != -1 {
		t.Fatalf("chan 40: %d %d %v", center, offset, err)
	}
	if _, _, err := ChannelSwitchCenter(1, 2412); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}
