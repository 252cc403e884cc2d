package service

import (
	"strings"
	"testing"
)

func TestFilterBoilerplate_RemovesPolicySection(t *testing.T) {
	input := "Booking confirmed for Alice Kumar.\n\n" +
		"Terms and conditions apply to this booking.\nNo refunds after 24 hours.\n\n" +
		"Total fare: Rs. 4,500"

	got := FilterBoilerplate(input)

	if strings.Contains(got, "Terms and conditions") {
		t.Errorf("policy section not removed: %q", got)
	}
	if strings.Contains(got, "No refunds") {
		t.Errorf("policy body not removed: %q", got)
	}
	if !strings.Contains(got, "Booking confirmed for Alice Kumar.") {
		t.Errorf("content before the section lost: %q", got)
	}
	if !strings.Contains(got, "Total fare: Rs. 4,500") {
		t.Errorf("content after the section lost: %q", got)
	}
}

func TestFilterBoilerplate_RemovesMultipleSections(t *testing.T) {
	input := "PNR: 1234567890\n\n" +
		"Rules and policies of the property.\nQuiet hours after 10pm.\n\n" +
		"Seat: 12A\n\n" +
		"Customer Care: call 139 for assistance.\nLines open 24x7.\n\n" +
		"Departure: 08:15"

	got := FilterBoilerplate(input)

	for _, removed := range []string{"Rules and policies", "Quiet hours", "Customer Care", "Lines open"} {
		if strings.Contains(got, removed) {
			t.Errorf("expected %q to be removed, got %q", removed, got)
		}
	}
	for _, kept := range []string{"PNR: 1234567890", "Seat: 12A", "Departure: 08:15"} {
		if !strings.Contains(got, kept) {
			t.Errorf("expected %q to be kept, got %q", kept, got)
		}
	}
}

func TestFilterBoilerplate_RemovesImagePlaceholders(t *testing.T) {
	input := "Hotel Sunrise Invoice\n\n[image] hotel-logo.png\nscanned artifact\n\nRoom: Deluxe Double"

	got := FilterBoilerplate(input)

	if strings.Contains(got, "[image]") {
		t.Errorf("image placeholder not removed: %q", got)
	}
	if !strings.Contains(got, "Room: Deluxe Double") {
		t.Errorf("content after placeholder lost: %q", got)
	}
}

func TestFilterBoilerplate_RemovesBothPetHeadingSpellings(t *testing.T) {
	input := "Hotel Sunrise booking.\n\n" +
		"Pet(s) Related: pets are not allowed.\nService animals exempt.\n\n" +
		"Pets Related rules apply on the terrace.\nLeash required.\n\n" +
		"Check-in: 2pm"

	got := FilterBoilerplate(input)

	for _, removed := range []string{"Pet(s) Related", "Pets Related", "Leash required"} {
		if strings.Contains(got, removed) {
			t.Errorf("expected %q to be removed, got %q", removed, got)
		}
	}
	if !strings.Contains(got, "Check-in: 2pm") {
		t.Errorf("content after the sections lost: %q", got)
	}
}

func TestFilterBoilerplate_Idempotent(t *testing.T) {
	input := "Itinerary\n\nFood Arrangement details follow.\nBreakfast included.\n\nCheck-in: 2pm"

	once := FilterBoilerplate(input)
	twice := FilterBoilerplate(once)

	if once != twice {
		t.Errorf("filter not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestFilterBoilerplate_IdentityOnCleanText(t *testing.T) {
	input := "Flight AI-202 from Delhi to Mumbai.\n\nSeat 14C, departure 09:40."

	got := FilterBoilerplate(input)

	if got != input {
		t.Errorf("expected clean text to pass through unchanged:\ngot:  %q\nwant: %q", got, input)
	}
}

func TestFilterBoilerplate_SectionWithoutBlankLineBoundaryKept(t *testing.T) {
	// A section with no blank line after it has no boundary to match against.
	input := "Summary line.\n\nCustomer Care: call 139."

	got := FilterBoilerplate(input)

	if !strings.Contains(got, "Customer Care") {
		t.Errorf("section without a closing blank line should be left alone, got %q", got)
	}
}
