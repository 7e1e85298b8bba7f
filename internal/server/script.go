package server

import "net/http"

// pageScript connects the page to /ws. It reports viewport resizes and
// scroll positions, asks for the stat counters once loaded, swaps in pushed
// scenes and highlights the active navigation link.
const pageScript = `(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws");
  var stats = document.querySelectorAll(".stat-value");
  ws.onopen = function () {
    ws.send(JSON.stringify({type: "load"}));
  };
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "scene") {
      var el = document.getElementById(msg.id);
      if (el) { el.outerHTML = msg.svg; }
    } else if (msg.type === "counter" && stats[msg.index]) {
      stats[msg.index].textContent = msg.text;
    } else if (msg.type === "section") {
      document.querySelectorAll(".nav-link").forEach(function (a) {
        a.classList.toggle("active", a.getAttribute("href") === "#" + msg.id);
      });
    }
  };
  window.addEventListener("scroll", function () {
    if (ws.readyState !== WebSocket.OPEN) { return; }
    var sections = [];
    document.querySelectorAll("section[id]").forEach(function (el) {
      sections.push({id: el.id, top: el.offsetTop});
    });
    ws.send(JSON.stringify({type: "scroll", scrollY: scrollY, sections: sections}));
  });
  window.addEventListener("resize", function () {
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({type: "resize", width: innerWidth, height: innerHeight}));
    }
  });
})();
`

func handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = w.Write([]byte(pageScript))
}
