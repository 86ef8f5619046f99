package live

// clientJS is the thin browser client: it opens the mutation stream,
// applies patches by node identity, and forwards DOM events on elements
// that carry a data-nid back to the server.
const clientJS = `(function () {
  var page = window.__DOM_PAGE || "index";
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/live/" + page);

  function byNid(nid) {
    return document.querySelector('[data-nid="' + nid + '"]');
  }

  function apply(p) {
    var el = byNid(p.nid);
    switch (p.op) {
      case "SetText":
        if (el) el.textContent = p.value;
        break;
      case "SetHTML":
        if (el) el.innerHTML = p.value;
        break;
      case "SetAttr":
        if (el) el.setAttribute(p.key, p.value);
        break;
      case "RemoveAttr":
        if (el) el.removeAttribute(p.key);
        break;
      case "SetStyle":
        if (el) el.style.setProperty(p.key, p.value);
        break;
      case "SetProp":
        if (el) el[p.key] = p.value;
        break;
      case "SetValue":
        if (el) el.value = p.value;
        break;
      case "InsertNode": {
        var parent = byNid(p.parent);
        if (!parent) break;
        var tpl = document.createElement("template");
        tpl.innerHTML = p.html;
        var node = tpl.content.firstChild;
        parent.insertBefore(node, parent.children[p.index] || null);
        break;
      }
      case "RemoveNode":
        if (el) el.remove();
        break;
      case "MoveNode": {
        var parent = byNid(p.parent);
        if (!parent || !el) break;
        var anchor = parent.children[p.index];
        if (anchor !== el) parent.insertBefore(el, anchor || null);
        break;
      }
    }
  }

  ws.onmessage = function (msg) {
    var frame = JSON.parse(msg.data);
    if (frame.type === "patch" && frame.patches) {
      frame.patches.forEach(apply);
    } else if (frame.type === "init" && frame.html) {
      document.body.innerHTML = frame.html;
    }
  };

  function forward(name) {
    document.addEventListener(name, function (e) {
      var t = e.target && e.target.closest && e.target.closest("[data-nid]");
      if (!t || ws.readyState !== 1) return;
      if (name === "submit") e.preventDefault();
      var value = t.value;
      if (value === undefined) {
        var field = t.querySelector && t.querySelector("input, textarea, select");
        value = field ? field.value : "";
      }
      ws.send(JSON.stringify({
        type: "event",
        event: { nid: t.getAttribute("data-nid"), event: name, value: value || "" }
      }));
    }, true);
  }
  ["click", "input", "change", "submit"].forEach(forward);

  setInterval(function () {
    if (ws.readyState === 1) ws.send(JSON.stringify({ type: "ping" }));
  }, 30000);
})();
`
