package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestEncodeGenres(t *testing.T) {
    assert.Equal(t, "[]", EncodeGenres(nil))
    assert.Equal(t, `["Jazz","Rock n Roll"]`, EncodeGenres([]string{"Jazz", "Rock n Roll"}))
}

func TestDecodeGenres(t *testing.T) {
    cases := []struct {
        name string
        raw  string
        want []string
    }{
        {"empty", "", []string{}},
        {"json", `["Jazz","R&B"]`, []string{"Jazz", "R&B"}},
        {"legacy braces", "{Jazz,Reggae,Swing}", []string{"Jazz", "Reggae", "Swing"}},
        {"legacy brackets with spaces", "[Jazz, Rock n Roll ]", []string{"Jazz", "Rock n Roll"}},
        {"quoted entries", `{"Hip-Hop",'Soul'}`, []string{"Hip-Hop", "Soul"}},
        {"empty entries dropped", "{Jazz,,}", []string{"Jazz"}},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            assert.Equal(t, tc.want, DecodeGenres(tc.raw))
        })
    }
}

func TestDecodeGenresPreservesOrder(t *testing.T) {
    in := []string{"Soul", "Blues", "Alternative"}
    assert.Equal(t, in, DecodeGenres(EncodeGenres(in)))
}

func TestIsGenreAndState(t *testing.T) {
    assert.True(t, IsGenre("Musical Theatre"))
    assert.False(t, IsGenre("musical theatre"))
    assert.True(t, IsState("TX"))
    assert.False(t, IsState("ZZ"))
}
