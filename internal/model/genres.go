package model

import (
    "encoding/json"
    "strings"
)

// Genres lists the genres a venue or artist may be tagged with, in the
// order they are offered on the forms.
var Genres = []string{
    "Alternative",
    "Blues",
    "Classical",
    "Country",
    "Electronic",
    "Folk",
    "Funk",
    "Hip-Hop",
    "Heavy Metal",
    "Instrumental",
    "Jazz",
    "Musical Theatre",
    "Pop",
    "Punk",
    "R&B",
    "Reggae",
    "Rock n Roll",
    "Soul",
    "Other",
}

var genreSet = func() map[string]bool {
    m := make(map[string]bool, len(Genres))
    for _, g := range Genres {
        m[g] = true
    }
    return m
}()

// IsGenre reports whether g is one of the known genres.
func IsGenre(g string) bool { return genreSet[g] }

// EncodeGenres serializes a genre list for the genres column.  The
// column always holds a JSON array; nil is stored as "[]".
func EncodeGenres(genres []string) string {
    if len(genres) == 0 {
        return "[]"
    }
    b, err := json.Marshal(genres)
    if err != nil {
        // []string never fails to marshal
        return "[]"
    }
    return string(b)
}

// DecodeGenres parses the genres column.  Besides JSON arrays it
// accepts the bracketed, comma separated form older rows were written
// in ("{Jazz,Rock n Roll}" or "[Jazz, Rock n Roll]").  Entries are
// trimmed and empty ones dropped.
func DecodeGenres(raw string) []string {
    raw = strings.TrimSpace(raw)
    if raw == "" {
        return []string{}
    }
    var out []string
    if strings.HasPrefix(raw, "[") && json.Unmarshal([]byte(raw), &out) == nil {
        return compact(out)
    }
    raw = strings.TrimPrefix(strings.TrimPrefix(raw, "{"), "[")
    raw = strings.TrimSuffix(strings.TrimSuffix(raw, "}"), "]")
    return compact(strings.Split(raw, ","))
}

func compact(in []string) []string {
    out := make([]string, 0, len(in))
    for _, g := range in {
        g = strings.Trim(strings.TrimSpace(g), `"'`)
        if g != "" {
            out = append(out, g)
        }
    }
    return out
}
