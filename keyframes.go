package cssengine

import (
	"strconv"
	"strings"

	"github.com/yacobolo/cssengine/internal/cssgen"
	"go.uber.org/zap"
)

// Keyframes injects an @keyframes rule and returns its animation name.
//
// frames maps stops (from, to, 50%) to declarations. The rule is injected
// once per distinct body; repeated bodies return the name they were first
// given.
//
//	fadeIn := e.Keyframes(cssengine.Declaration{
//		{Key: "from", Value: cssengine.Declaration{{Key: "opacity", Value: 0}}},
//		{Key: "to", Value: cssengine.Declaration{{Key: "opacity", Value: 1}}},
//	})
func (e *Engine) Keyframes(frames Declaration) string {
	var body strings.Builder
	for _, stop := range frames {
		props, ok := stop.Value.(Declaration)
		if !ok {
			continue
		}
		body.WriteString(stop.Key)
		body.WriteByte('{')
		body.WriteString(cssgen.PropertiesCSS(props))
		body.WriteByte('}')
	}
	css := body.String()

	e.mu.Lock()
	defer e.mu.Unlock()

	if name, ok := e.keyframes[css]; ok {
		return name
	}

	e.kfCounter++
	name := e.config.Prefix + "-kf-" + strconv.FormatUint(e.kfCounter, 36)
	e.insert("@keyframes " + name + "{" + css + "}")
	e.keyframes[css] = name
	e.log.Debug("Keyframes registered", zap.String("name", name))
	return name
}
