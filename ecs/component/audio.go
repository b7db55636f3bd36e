package component

// AudioListener marks the entity spatial audio is heard from.
type AudioListener struct{}

var AudioListenerComponent = NewComponent[AudioListener]()
