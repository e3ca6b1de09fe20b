package templates

import (
	"strings"

	"github.com/prelandr/prelandr-go/internal/presentation/templates/catalog"
)

// Historical schema versions constrained sites.template_id to t1..t8 while
// the catalog had already grown to t15. Writes collapsed the extended ids
// onto placeholders inside the constrained set, and regeneration recovered
// the true id by sniffing the stored markup. The current schema admits the
// full catalog, so new rows never need this; the remapper survives only to
// read rows written under the old constraint.

// legacyAllowedSet is the template id enumeration the old check constraint
// accepted.
var legacyAllowedSet = map[string]bool{
	"t1": true, "t2": true, "t3": true, "t4": true,
	"t5": true, "t6": true, "t7": true, "t8": true,
}

// legacyCollapse maps each extended id onto its placeholder within the
// constrained set. The placeholder was chosen as the closest visual cousin.
var legacyCollapse = map[string]string{
	"t9":  "t3", // mega-wheel    -> fortune-wheel
	"t10": "t4", // fruit-slots   -> slot-machine
	"t11": "t2", // vip-lounge    -> dark-luxe
	"t12": "t5", // crash-rocket  -> neon-arcade
	"t13": "t8", // scratch-card  -> bonus-popup
	"t14": "t7", // live-casino   -> golden-jackpot
	"t15": "t1", // sportsbook    -> classic-hero
}

// LegacyAllowed reports whether dbID belongs to the old constrained set.
func LegacyAllowed(dbID string) bool {
	return legacyAllowedSet[dbID]
}

// RemapForStorage translates an application template id into an id the old
// check constraint accepted. Ids already inside the set pass through;
// extended ids collapse onto their placeholder. Unknown ids collapse onto
// the default template.
func RemapForStorage(appTemplateID string) string {
	if legacyAllowedSet[appTemplateID] {
		return appTemplateID
	}
	if collapsed, ok := legacyCollapse[appTemplateID]; ok {
		return collapsed
	}
	return DefaultTemplateID
}

// RecoverAppTemplateID recovers the true template id from a legacy row. When
// several app ids collapse onto dbID the stored HTML is inspected for each
// candidate's root-class marker; the stored id wins when no marker matches.
// Deterministic: identical inputs always yield the identical answer.
func RecoverAppTemplateID(dbTemplateID, storedHTML string) string {
	if !legacyAllowedSet[dbTemplateID] {
		// Already an extended id; nothing was collapsed.
		if _, known := catalog.Markers[dbTemplateID]; known {
			return dbTemplateID
		}
		return DefaultTemplateID
	}

	// Candidates are checked extended-id first so a collapsed row is
	// recovered in preference to its placeholder.
	for extID, placeholder := range legacyCollapse {
		if placeholder != dbTemplateID {
			continue
		}
		if marker, ok := catalog.Markers[extID]; ok && strings.Contains(storedHTML, marker) {
			return extID
		}
	}
	return dbTemplateID
}
